package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersTotal    = promauto.NewCounter(prometheus.CounterOpts{Namespace: "ridepulse", Name: "offers_total", Help: "Total number of offers submitted"})
	TripsMatched   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "ridepulse", Name: "trips_matched_total", Help: "Total number of trips matched to a driver"})
	DriversOnline  = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "ridepulse", Name: "drivers_online", Help: "Number of online drivers"})
	SOSAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "ridepulse", Name: "sos_alerts_total", Help: "Total number of SOS alerts sent"})

	PollCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridepulse", Name: "poll_cycles_total", Help: "Polling fallback iterations by outcome"},
		[]string{"outcome"},
	)
	EventsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridepulse", Name: "events_applied_total", Help: "Realtime/poll events applied to session state"},
		[]string{"channel", "result"},
	)
	TrackingModeSwitches = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ridepulse", Name: "tracking_mode_switches_total", Help: "Tracking mode transitions"},
		[]string{"mode"},
	)
)
