package metrics

import "github.com/prometheus/client_golang/prometheus"

// PromSink records placement events in Prometheus metrics.
type PromSink struct {
	placements  *prometheus.CounterVec
	unscheduled *prometheus.CounterVec
	attempts    *prometheus.CounterVec
}

// NewPromSink registers the placement metrics on the provided registerer. If
// reg is nil, the default registerer is used. Already-registered collectors
// are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	placements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_placements_total",
		Help: "Sessions successfully placed on the grid",
	}, []string{"component"})
	unscheduled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_unscheduled_total",
		Help: "Sessions that exhausted their retry budget",
	}, []string{"component"})
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_placement_attempts_total",
		Help: "Placement attempts, including rejected candidates",
	}, []string{"component"})

	for i, c := range []*prometheus.CounterVec{placements, unscheduled, attempts} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			existing := are.ExistingCollector.(*prometheus.CounterVec)
			switch i {
			case 0:
				placements = existing
			case 1:
				unscheduled = existing
			case 2:
				attempts = existing
			}
		}
	}

	return &PromSink{placements: placements, unscheduled: unscheduled, attempts: attempts}, nil
}

func (s *PromSink) RecordPlacement(component string) {
	s.placements.WithLabelValues(component).Inc()
}

func (s *PromSink) RecordUnscheduled(component string) {
	s.unscheduled.WithLabelValues(component).Inc()
}

func (s *PromSink) RecordAttempts(component string, n int) {
	s.attempts.WithLabelValues(component).Add(float64(n))
}
