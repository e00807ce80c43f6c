package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authAttemptsTotal counts Authenticate outcomes: success, invalid, error.
	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_auth_attempts_total",
			Help: "Admin login attempts by outcome.",
		},
		[]string{"result"},
	)

	// gateDecisionsTotal counts access gate decisions: admit, reject.
	gateDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_gate_decisions_total",
			Help: "Access gate decisions on privileged requests.",
		},
		[]string{"decision"},
	)

	// uploadsRegisteredTotal counts per-payload ingestion outcomes.
	uploadsRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_uploads_registered_total",
			Help: "Upload payloads by registration result.",
		},
		[]string{"result"},
	)
)
