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
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/database/models"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/mocks"
	"github.com/incentra-dev/incentra/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSessionMiddleware(t *testing.T) {
	e := echo.New()
	noop := func(ctx echo.Context) error { return ctx.NoContent(200) }

	t.Run("resolves the user into an actor", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		user := models.User{Role: dtos.RoleConsultant}
		user.ID = uuid.New()
		users.On("Read", user.ID).Return(user, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-User-ID", user.ID.String())
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		var actor shared.Actor
		err := SessionMiddleware(users)(func(ctx echo.Context) error {
			actor = shared.GetActor(ctx)
			return nil
		})(ctx)

		assert.NoError(t, err)
		assert.Equal(t, user.ID, actor.ID)
		assert.Equal(t, dtos.RoleConsultant, actor.Role)
	})

	t.Run("rejects a request without identity", func(t *testing.T) {
		users := mocks.NewUserRepository(t)

		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := SessionMiddleware(users)(noop)(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})

	t.Run("rejects a malformed user id", func(t *testing.T) {
		users := mocks.NewUserRepository(t)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-User-ID", "not-a-uuid")
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := SessionMiddleware(users)(noop)(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 401, httpErr.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()

	t.Run("lets admins through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		ctx := e.NewContext(req, httptest.NewRecorder())
		shared.SetActor(ctx, shared.Actor{ID: uuid.New(), Role: dtos.RoleAdmin})

		err := AdminOnly()(func(ctx echo.Context) error { return ctx.NoContent(200) })(ctx)

		assert.NoError(t, err)
	})

	t.Run("blocks everyone else", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		ctx := e.NewContext(req, httptest.NewRecorder())
		shared.SetActor(ctx, shared.Actor{ID: uuid.New(), Role: dtos.RoleConsultant})

		err := AdminOnly()(func(ctx echo.Context) error { return ctx.NoContent(200) })(ctx)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 403, httpErr.Code)
	})
}
