package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNilMetrics(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	require.Nil(t, m)

	// Must not panic.
	m.ObjectWritten(true)
	m.ObjectRead(ReadOK)
	m.CacheHit()
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.ObjectWritten(true)
	m.ObjectWritten(false)
	m.ObjectWritten(false)
	m.ObjectRead(ReadMissing)
	m.CacheHit()

	require.Equal(t, 1.0, testutil.ToFloat64(m.writes.WithLabelValues("created")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.writes.WithLabelValues("exists")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.reads.WithLabelValues(ReadMissing)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
}

func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := New(reg)
	require.NoError(t, err)
	b, err := New(reg)
	require.NoError(t, err)

	a.ObjectRead(ReadOK)
	b.ObjectRead(ReadOK)

	require.Equal(t, 2.0, testutil.ToFloat64(a.reads.WithLabelValues(ReadOK)))
}
