package client

import "time"

const (
	defaultEndpoint = "http://localhost:8000"
	requestTimeout  = 10 * time.Minute
)

type GenerateResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type StatsResponse struct {
	RequestsToday         int64     `json:"requests_today"`
	SuccessfulGenerations int64     `json:"successful_generations"`
	Errors                int64     `json:"errors"`
	StartTime             time.Time `json:"start_time"`
	Uptime                string    `json:"uptime"`
	SuccessRate           float64   `json:"success_rate"`
}

type HealthResponse struct {
	Status            string        `json:"status"`
	Timestamp         time.Time     `json:"timestamp"`
	Stats             StatsResponse `json:"stats"`
	TelegramBotStatus string        `json:"telegram_bot_status"`
	ModelStatus       string        `json:"model_status"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
