package app

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func counterValue(t *testing.T, family string, service string) float64 {
	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)
	for _, f := range families {
		if f.GetName() != family {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "service" && label.GetValue() == service {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestObserveRun(t *testing.T) {
	runs := counterValue(t, "ada_bridge_runner_runs_total", "metrics-test")
	failures := counterValue(t, "ada_bridge_runner_failures_total", "metrics-test")

	ObserveRun("metrics-test", true, time.Millisecond)
	ObserveRun("metrics-test", false, time.Millisecond)

	assert.Equal(t, runs+2, counterValue(t, "ada_bridge_runner_runs_total", "metrics-test"))
	assert.Equal(t, failures+1, counterValue(t, "ada_bridge_runner_failures_total", "metrics-test"))
}
