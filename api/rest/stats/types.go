package stats

import corestats "github.com/morozai/core/internal/stats"

type Response struct {
	corestats.Snapshot
	Uptime      string  `json:"uptime"`
	SuccessRate float64 `json:"success_rate"`
}
