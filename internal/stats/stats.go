package stats

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// generation outcomes used as metric labels
const (
	OutcomeSuccess  = "success"
	OutcomeNotReady = "not_ready"
	OutcomeError    = "error"
)

// process-wide request counters. counters only grow and are reset by
// restarting the process. errors are counted independently of successes.
type Stats struct {
	requests  atomic.Int64
	successes atomic.Int64
	errors    atomic.Int64
	startTime time.Time

	duration *prometheus.HistogramVec
}

// point-in-time copy of the counters
type Snapshot struct {
	RequestsToday         int64     `json:"requests_today"`
	SuccessfulGenerations int64     `json:"successful_generations"`
	Errors                int64     `json:"errors"`
	StartTime             time.Time `json:"start_time"`
}

func New(startTime time.Time) *Stats {
	return &Stats{
		startTime: startTime,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "morozai",
			Name:      "generation_duration_seconds",
			Help:      "Time spent generating code, by outcome.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"outcome"}),
	}
}

func (s *Stats) IncRequests() {
	s.requests.Add(1)
}

func (s *Stats) IncSuccesses() {
	s.successes.Add(1)
}

func (s *Stats) IncErrors() {
	s.errors.Add(1)
}

func (s *Stats) StartTime() time.Time {
	return s.startTime
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		RequestsToday:         s.requests.Load(),
		SuccessfulGenerations: s.successes.Load(),
		Errors:                s.errors.Load(),
		StartTime:             s.startTime,
	}
}

// time elapsed since start, truncated to whole seconds
func (s *Stats) Uptime(now time.Time) time.Duration {
	return now.Sub(s.startTime).Truncate(time.Second)
}

// percentage of requests that produced code, rounded half to even at two decimals
func (s Snapshot) SuccessRate() float64 {
	if s.RequestsToday <= 0 {
		return 0
	}

	rate := float64(s.SuccessfulGenerations) / float64(s.RequestsToday) * 100

	return math.RoundToEven(rate*100) / 100
}

// records how long a generation call took
func (s *Stats) ObserveGeneration(d time.Duration, outcome string) {
	s.duration.WithLabelValues(outcome).Observe(d.Seconds())
}

// exposes the counters and the duration histogram to prometheus
func (s *Stats) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "morozai",
			Name:      "requests_total",
			Help:      "Generation requests that passed validation.",
		}, func() float64 { return float64(s.requests.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "morozai",
			Name:      "generations_success_total",
			Help:      "Generation requests that returned code.",
		}, func() float64 { return float64(s.successes.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: "morozai",
			Name:      "generation_errors_total",
			Help:      "Generation requests that failed after validation.",
		}, func() float64 { return float64(s.errors.Load()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "morozai",
			Name:      "uptime_seconds",
			Help:      "Seconds since the service started.",
		}, func() float64 { return time.Since(s.startTime).Seconds() }),
		s.duration,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}
