package mygit

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/aweris/mygit/internal/compression"
)

// DefaultCacheSize is the number of decoded objects a DB keeps in memory.
const DefaultCacheSize = 256

// Options configures a DB.
type Options struct {
	Logger           *zap.Logger
	CacheSize        int
	CompressionLevel int
	Verify           bool
	Registerer       prometheus.Registerer
}

// Option is a functional option for configuring Open.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Logger:           zap.NewNop(),
		CacheSize:        DefaultCacheSize,
		CompressionLevel: compression.DefaultLevel,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCacheSize sets how many decoded objects are cached. Zero disables
// the cache.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.CacheSize = n
		}
	}
}

// WithCompressionLevel sets the zlib level for new objects.
func WithCompressionLevel(level int) Option {
	return func(o *Options) { o.CompressionLevel = level }
}

// WithVerify makes reads check the header length against the payload and
// re-hash the object against the requested digest.
func WithVerify(verify bool) Option {
	return func(o *Options) { o.Verify = verify }
}

// WithMetrics registers object database counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *Options) { o.Registerer = reg }
}
