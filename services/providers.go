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

package services

import (
	"github.com/incentra-dev/incentra/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(shared.LoadEngineConfig),
	fx.Provide(fx.Annotate(NewFanoutService, fx.As(new(shared.FanoutService)))),
	fx.Provide(fx.Annotate(NewCapacityService, fx.As(new(shared.CapacityService)))),
	fx.Provide(fx.Annotate(NewAssignmentService, fx.As(new(shared.AssignmentService)))),
	fx.Provide(fx.Annotate(NewLifecycleService, fx.As(new(shared.LifecycleService)))),
	fx.Provide(fx.Annotate(NewApplicationService, fx.As(new(shared.ApplicationService)))),
	fx.Provide(fx.Annotate(NewRoomService, fx.As(new(shared.RoomService)))),
	fx.Provide(fx.Annotate(NewTicketService, fx.As(new(shared.TicketService)))),
)
