package oddsieve

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var mc BasicMetricsCollector

	assert.Equal(t, BasicMetricsStats{}, mc.GetStats())

	mc.RecordBuild(100, 2*time.Millisecond, nil)
	mc.RecordBuild(200, 4*time.Millisecond, errors.New("boom"))
	mc.RecordOutput(ModeList, 6*time.Millisecond, nil)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.BuildCount)
	assert.Equal(t, int64(1), stats.BuildErrors)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.BuildAvgNanos)
	assert.Equal(t, uint64(200), stats.LastLimit)
	assert.Equal(t, int64(1), stats.OutputCount)
	assert.Zero(t, stats.OutputErrors)
	assert.Equal(t, (6 * time.Millisecond).Nanoseconds(), stats.OutputAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordBuild(1, 0, nil)
	mc.RecordOutput(ModeCount, 0, nil)
}
