package stats

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessRate_NoRequests(t *testing.T) {
	s := New(time.Now())

	assert.Equal(t, 0.0, s.Snapshot().SuccessRate())
}

func TestSuccessRate_Rounding(t *testing.T) {
	tests := []struct {
		requests, successes int64
		want                float64
	}{
		{3, 3, 100},
		{3, 1, 33.33},
		{3, 2, 66.67},
		{4, 0, 0},
		{32, 1, 3.12},
		{32, 3, 9.38},
	}

	for _, tt := range tests {
		snap := Snapshot{RequestsToday: tt.requests, SuccessfulGenerations: tt.successes}
		assert.Equal(t, tt.want, snap.SuccessRate())
	}
}

func TestCountersConcurrent(t *testing.T) {
	s := New(time.Now())

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.IncRequests()
			if i%4 == 0 {
				s.IncErrors()
				return
			}
			s.IncSuccesses()
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, int64(100), snap.RequestsToday)
	assert.Equal(t, int64(75), snap.SuccessfulGenerations)
	assert.Equal(t, int64(25), snap.Errors)
	assert.Equal(t, 75.0, snap.SuccessRate())
}

func TestUptime(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := New(start)

	uptime := s.Uptime(start.Add(90*time.Minute + 1500*time.Millisecond))

	assert.Equal(t, "1h30m1s", uptime.String())
}

func TestRegister(t *testing.T) {
	s := New(time.Now())
	reg := prometheus.NewRegistry()
	require.NoError(t, s.Register(reg))

	s.IncRequests()
	s.IncRequests()
	s.IncSuccesses()
	s.IncErrors()
	s.ObserveGeneration(2*time.Second, OutcomeSuccess)

	expected := `
# HELP morozai_requests_total Generation requests that passed validation.
# TYPE morozai_requests_total counter
morozai_requests_total 2
# HELP morozai_generations_success_total Generation requests that returned code.
# TYPE morozai_generations_success_total counter
morozai_generations_success_total 1
# HELP morozai_generation_errors_total Generation requests that failed after validation.
# TYPE morozai_generation_errors_total counter
morozai_generation_errors_total 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"morozai_requests_total",
		"morozai_generations_success_total",
		"morozai_generation_errors_total",
	)
	assert.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(s.duration))

	// registering twice is a programming error
	assert.Error(t, s.Register(reg))
}
