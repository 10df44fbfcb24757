package fx

import (
	"sync/atomic"

	"github.com/lixenwraith/glyph-trail/status"
)

// Metric keys published to the status registry
const (
	MetricParticles = "fx.particles"
	MetricFrames    = "fx.frames"
	MetricEmitted   = "fx.emitted"
	MetricThrottled = "fx.throttled"
	MetricEvicted   = "fx.evicted"
	MetricCulled    = "fx.culled"
	MetricMounts    = "fx.mounts"
	MetricMounted   = "fx.mounted"
	MetricRunning   = "fx.running"
	MetricMotion    = "fx.motion"
	MetricPaintMs   = "fx.paint_ms"
)

// metrics caches registry pointers so the frame path never touches the map
type metrics struct {
	particles *atomic.Int64
	frames    *atomic.Int64
	emitted   *atomic.Int64
	throttled *atomic.Int64
	evicted   *atomic.Int64
	culled    *atomic.Int64
	mounts    *atomic.Int64
	mounted   *atomic.Bool
	running   *atomic.Bool
	motion    *status.AtomicString
	paintMs   *status.AtomicFloat
}

func newMetrics(r *status.Registry) metrics {
	return metrics{
		particles: r.Ints.Get(MetricParticles),
		frames:    r.Ints.Get(MetricFrames),
		emitted:   r.Ints.Get(MetricEmitted),
		throttled: r.Ints.Get(MetricThrottled),
		evicted:   r.Ints.Get(MetricEvicted),
		culled:    r.Ints.Get(MetricCulled),
		mounts:    r.Ints.Get(MetricMounts),
		mounted:   r.Bools.Get(MetricMounted),
		running:   r.Bools.Get(MetricRunning),
		motion:    r.Strings.Get(MetricMotion),
		paintMs:   r.Floats.Get(MetricPaintMs),
	}
}
