// Package metrics exposes Prometheus counters for the object database.
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mygit"

// Read outcomes.
const (
	ReadOK      = "ok"
	ReadMissing = "missing"
	ReadCorrupt = "corrupt"
)

type Metrics struct {
	writes    *prometheus.CounterVec
	reads     *prometheus.CounterVec
	cacheHits prometheus.Counter
}

// New registers the object database collectors on reg. Collectors that are
// already registered are reused, so several databases may share one
// registry. A nil reg yields a nil *Metrics.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "objects",
		Name:      "writes_total",
		Help:      "Objects persisted, by whether the file was newly created.",
	}, []string{"result"})
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "objects",
		Name:      "reads_total",
		Help:      "Object reads, by outcome.",
	}, []string{"result"})
	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "objects",
		Name:      "cache_hits_total",
		Help:      "Object reads served from the in-memory cache.",
	})

	var err error
	if writes, err = register(reg, writes); err != nil {
		return nil, err
	}
	if reads, err = register(reg, reads); err != nil {
		return nil, err
	}
	if cacheHits, err = register(reg, cacheHits); err != nil {
		return nil, err
	}

	return &Metrics{writes: writes, reads: reads, cacheHits: cacheHits}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObjectWritten counts a persisted write. created is false when the object
// was already on disk.
func (m *Metrics) ObjectWritten(created bool) {
	if m == nil {
		return
	}
	result := "created"
	if !created {
		result = "exists"
	}
	m.writes.WithLabelValues(result).Inc()
}

func (m *Metrics) ObjectRead(result string) {
	if m == nil {
		return
	}
	m.reads.WithLabelValues(result).Inc()
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}
