// Copyright (C) 2025 Incentra GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/shared"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the calling user into a shared.Actor. The portal
// sits behind an authenticating reverse proxy that stamps the verified user
// ID onto the request - this layer only resolves the role.
func SessionMiddleware(userRepository shared.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			rawUserID := ctx.Request().Header.Get("X-User-ID")
			if rawUserID == "" {
				return echo.NewHTTPError(401, "missing user identity")
			}

			userID, err := uuid.Parse(rawUserID)
			if err != nil {
				return echo.NewHTTPError(401, "invalid user identity").WithInternal(err)
			}

			user, err := userRepository.Read(userID)
			if err != nil {
				return echo.NewHTTPError(401, "unknown user").WithInternal(err)
			}

			shared.SetActor(ctx, shared.Actor{ID: user.ID, Role: user.Role})
			return next(ctx)
		}
	}
}

// AdminOnly rejects non-admin actors before the handler runs.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !shared.GetActor(ctx).IsAdmin() {
				return echo.NewHTTPError(403, "admin role required")
			}
			return next(ctx)
		}
	}
}
