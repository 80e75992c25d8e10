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

package controllers

import (
	"github.com/incentra-dev/incentra/shared"
	"github.com/labstack/echo/v4"
)

// asHTTPError maps typed engine errors onto the API contract: the kind is the
// stable machine-readable field, the message the human-readable one. Anything
// untyped bubbles up as a 500 through the central error handler.
func asHTTPError(err error) error {
	if engineErr := shared.AsEngineError(err); engineErr != nil {
		return echo.NewHTTPError(engineErr.HTTPStatus(), map[string]string{
			"kind":    string(engineErr.Kind),
			"message": engineErr.Message,
		}).WithInternal(err)
	}
	return err
}
