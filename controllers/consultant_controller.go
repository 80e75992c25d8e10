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
	"strconv"

	"github.com/incentra-dev/incentra/shared"
	"github.com/incentra-dev/incentra/transformer"
	"github.com/labstack/echo/v4"
)

type ConsultantController struct {
	capacityService shared.CapacityService
	config          shared.EngineConfig
}

func NewConsultantController(capacityService shared.CapacityService, config shared.EngineConfig) *ConsultantController {
	return &ConsultantController{
		capacityService: capacityService,
		config:          config,
	}
}

// ListEligible returns the capacity directory for a sector: active consultants
// with free capacity, ranked the way the automatic matcher ranks them.
func (c *ConsultantController) ListEligible(ctx shared.Context) error {
	sector := ctx.QueryParam("sector")
	if sector == "" {
		return echo.NewHTTPError(400, "missing sector")
	}

	minRating := c.config.MinRating
	if raw := ctx.QueryParam("minRating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(400, "invalid minRating").WithInternal(err)
		}
		minRating = parsed
	}

	candidates, err := c.capacityService.ListEligible(sector, minRating)
	if err != nil {
		return echo.NewHTTPError(500, "could not list eligible consultants").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ConsultantCandidatesToDTOs(candidates))
}

// AssignmentStats reports average assignment duration by assignment type,
// derived from closed ledger entries.
func (c *ConsultantController) AssignmentStats(ctx shared.Context) error {
	stats, err := c.capacityService.AssignmentStats()
	if err != nil {
		return echo.NewHTTPError(500, "could not compute assignment stats").WithInternal(err)
	}

	return ctx.JSON(200, stats)
}

func (c *ConsultantController) Workload(ctx shared.Context) error {
	consultantID, err := shared.GetConsultantID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	workload, err := c.capacityService.Workload(consultantID)
	if err != nil {
		return echo.NewHTTPError(404, "consultant not found").WithInternal(err)
	}

	return ctx.JSON(200, workload)
}
