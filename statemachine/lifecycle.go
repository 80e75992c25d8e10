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

package statemachine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/incentra-dev/incentra/dtos"
	"github.com/incentra-dev/incentra/shared"
)

// edgePolicy is the authorization rule of one transition edge.
type edgePolicy struct {
	roles map[dtos.UserRole]bool
	// ownerOnly restricts the user role to the entity's owning user. It has
	// no effect on consultant or admin.
	ownerOnly bool
}

func roles(rs ...dtos.UserRole) edgePolicy {
	m := make(map[dtos.UserRole]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return edgePolicy{roles: m}
}

func ownerOr(rs ...dtos.UserRole) edgePolicy {
	p := roles(append(rs, dtos.RoleUser)...)
	p.ownerOnly = true
	return p
}

// Machine is a role-authorized transition table over one status vocabulary.
// Rooms, tickets and applications share this contract; only their edge
// tables differ.
type Machine[S ~string] struct {
	entity string
	edges  map[S]map[S]edgePolicy
}

// CanTransition validates reachability only. Reachability is checked before
// authorization everywhere, so a caller probing an illegal edge learns
// nothing about role requirements.
func (m *Machine[S]) CanTransition(from, to S) error {
	if _, ok := m.edges[from][to]; !ok {
		return shared.NewInvalidTransition(m.entity, string(from), string(to))
	}
	return nil
}

// Authorize validates the actor against the edge policy. ownerID is the
// entity's owning user; it only matters for owner-restricted edges.
func (m *Machine[S]) Authorize(from, to S, actor shared.Actor, ownerID uuid.UUID) error {
	policy, ok := m.edges[from][to]
	if !ok {
		return shared.NewInvalidTransition(m.entity, string(from), string(to))
	}
	if !policy.roles[actor.Role] {
		return shared.NewForbidden(fmt.Sprintf("role %s may not move %s from %s to %s", actor.Role, m.entity, from, to))
	}
	if policy.ownerOnly && actor.Role == dtos.RoleUser && actor.ID != ownerID {
		return shared.NewForbidden(fmt.Sprintf("only the owning user may move %s from %s to %s", m.entity, from, to))
	}
	return nil
}

// Validate runs reachability then authorization, in that order.
func (m *Machine[S]) Validate(from, to S, actor shared.Actor, ownerID uuid.UUID) error {
	if err := m.CanTransition(from, to); err != nil {
		return err
	}
	return m.Authorize(from, to, actor, ownerID)
}

// Reachable returns the targets reachable from the given state, for any role.
func (m *Machine[S]) Reachable(from S) []S {
	targets := make([]S, 0, len(m.edges[from]))
	for to := range m.edges[from] {
		targets = append(targets, to)
	}
	return targets
}
