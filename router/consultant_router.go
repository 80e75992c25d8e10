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

package router

import (
	"github.com/incentra-dev/incentra/controllers"
	"github.com/incentra-dev/incentra/middlewares"
	"github.com/labstack/echo/v4"
)

type ConsultantRouter struct {
	*echo.Group
}

func NewConsultantRouter(apiV1Router APIV1Router, consultantController *controllers.ConsultantController) ConsultantRouter {
	consultantRouter := apiV1Router.Group.Group("/consultants")

	consultantRouter.GET("/eligible/", consultantController.ListEligible)
	consultantRouter.GET("/assignment-stats/", consultantController.AssignmentStats, middlewares.AdminOnly())
	consultantRouter.GET("/:consultantID/workload/", consultantController.Workload)

	return ConsultantRouter{Group: consultantRouter}
}
