package mailer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var MailerEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "mailer_gateway_events_total",
		Help: "Total number of driver notification events published",
	},
	[]string{"message_type", "result"},
)
