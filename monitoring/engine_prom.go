// Copyright 2025 Incentra GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AssignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incentra_assignments_total",
	Help: "The total number of consultant assignments, by type",
}, []string{"type"})

var AssignmentConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "incentra_assignment_conflicts_total",
	Help: "The total number of assignments lost to a concurrent race",
})

var NoEligibleConsultantTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "incentra_no_eligible_consultant_total",
	Help: "The total number of automatic matches that found no candidate",
})

var StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incentra_status_transitions_total",
	Help: "The total number of application status transitions, by target status",
}, []string{"status"})

var AssignmentRetryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "incentra_daemon_assignment_retry_duration_seconds",
	Help:    "Duration of one assignment retry sweep in seconds",
	Buckets: prometheus.DefBuckets,
})

var NotificationsDeliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "incentra_notifications_delivered_total",
	Help: "The total number of notification delivery attempts, by outcome",
}, []string{"outcome"})
