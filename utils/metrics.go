package utils

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"
)

const metricNamespace = "mcevents"

type Metrics struct {
	Pusher        *push.Pusher
	Registrations *prometheus.CounterVec
	Fired         *prometheus.CounterVec
	Dispatched    *prometheus.CounterVec
	Panics        *prometheus.CounterVec
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Registrations, m.Fired, m.Dispatched, m.Panics}
}

// Attach pushes the collectors to p now and every 15 seconds after.
func (m *Metrics) Attach(p *push.Pusher) {
	for _, c := range m.Collectors() {
		p.Collector(c)
	}
	m.Pusher = p
	if err := p.Push(); err != nil {
		logrus.Warnf("Failed to push metrics %s", err)
	}

	go func() {
		t := time.NewTicker(15 * time.Second)
		for range t.C {
			if err := m.Pusher.Add(); err != nil {
				logrus.Warnf("Failed to push metrics %s", err)
			}
		}
	}()
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "handler_registrations_total",
			Help:      "Handlers registered per event",
		}, []string{"event"}),
		Fired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "events_fired_total",
			Help:      "Times an event was fired",
		}, []string{"event"}),
		Dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "handler_calls_total",
			Help:      "Handler invocations per event",
		}, []string{"event"}),
		Panics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "handler_panics_total",
			Help:      "Handler invocations that panicked",
		}, []string{"event"}),
	}
	return m
}
