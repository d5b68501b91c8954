// Package metrics exports store events to Prometheus.
package metrics

import (
	"github.com/krisalay/objstats/types"
	"github.com/prometheus/client_golang/prometheus"
)

var _ types.Metrics = (*Prometheus)(nil)

// Prometheus counts store events. The totals live here, not in the store.
type Prometheus struct {
	Inserts    prometheus.Counter
	Updates    prometheus.Counter
	Hits       prometheus.Counter
	Misses     prometheus.Counter
	Rejections prometheus.Counter
}

// NewPrometheus creates the counters and registers them on reg.
// constLabels lets several replays share one registry (e.g. {"trace": name}).
func NewPrometheus(reg prometheus.Registerer, constLabels prometheus.Labels) (*Prometheus, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "objstats",
			Subsystem:   "store",
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}

	m := &Prometheus{
		Inserts:    counter("inserts_total", "Records created by Touch."),
		Updates:    counter("updates_total", "Touches of an existing Record."),
		Hits:       counter("hits_total", "Hits recorded on the current object."),
		Misses:     counter("misses_total", "Misses recorded on the current object."),
		Rejections: counter("rejections_total", "Calls refused in strict mode."),
	}

	for _, c := range []prometheus.Collector{m.Inserts, m.Updates, m.Hits, m.Misses, m.Rejections} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Prometheus) Insert() { m.Inserts.Inc() }
func (m *Prometheus) Update() { m.Updates.Inc() }
func (m *Prometheus) Hit()    { m.Hits.Inc() }
func (m *Prometheus) Miss()   { m.Misses.Inc() }
func (m *Prometheus) Reject() { m.Rejections.Inc() }
