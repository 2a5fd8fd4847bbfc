package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/coreflowdata/epochcore/module/metrics"
)

func TestEpochCollector_ClosedEpochIncrementsCounterAndSetsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewEpochCollector(reg)

	collector.ClosedEpoch("Commit", 5)
	collector.ClosedEpoch("Commit", 6)
	collector.ClosedEpoch("CommitAndPersist", 7)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() != "epoch_core_closes_total" {
			continue
		}
		found = true
		for _, metric := range family.GetMetric() {
			if labelValue(metric, "action") == "Commit" {
				require.EqualValues(t, 2, metric.GetCounter().GetValue())
			}
		}
	}
	require.True(t, found, "expected epoch_core_closes_total to be registered")

	var gaugeFound bool
	for _, family := range families {
		if family.GetName() != "epoch_core_current_epoch_id" {
			continue
		}
		gaugeFound = true
		require.EqualValues(t, 7, family.GetMetric()[0].GetGauge().GetValue())
	}
	require.True(t, gaugeFound, "expected epoch_core_current_epoch_id to be registered")
}

func TestEpochCollector_BarrierWaitObserves(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewEpochCollector(reg)

	collector.BarrierWait(5 * time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() == "epoch_core_barrier_wait_seconds" {
			found = true
			require.EqualValues(t, 1, family.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	require.True(t, found)
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}
