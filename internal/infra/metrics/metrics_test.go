package metrics

import (
	"testing"
	"time"

	"blogpilot/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordsAPICalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "test")

	c.RecordAPICall("GET /credits/status", 200, 10*time.Millisecond)
	c.RecordAPICall("GET /credits/status", 200, 20*time.Millisecond)
	c.RecordAPIFailure("GET /credits/status", "timeout")
	c.RecordFallback("GET /credits/status")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.apiCalls.WithLabelValues("GET /credits/status", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.apiFailures.WithLabelValues("GET /credits/status", "timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fallbacks.WithLabelValues("GET /credits/status")))
}

func TestCollector_RecordsJobs(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "test")

	c.RecordJobStarted()
	c.RecordSlotResolved()
	c.RecordSlotResolved()
	c.RecordProbe(true)
	c.RecordProbe(false)
	c.RecordJobFinished("completed", 3*time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.jobsStarted))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.slotsResolved))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.probes.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.jobsFinished.WithLabelValues("completed")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg, "test")

	assert.Panics(t, func() { NewCollector(reg, "test") })
}

func TestNew_DisabledIsNop(t *testing.T) {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: false}}

	assert.Equal(t, Nop{}, New(cfg))
}
