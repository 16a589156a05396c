package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite = lipgloss.Color("#FFFFFF")
	colorGray  = lipgloss.Color("#888888")
	colorGreen = lipgloss.Color("#00FF00")
	colorRed   = lipgloss.Color("#FF0000")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Width(24)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen).
		Bold(true)

	badStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)

// renders generated code as a fenced block; an empty lang leaves the fence untagged
func RenderGeneration(resp *GenerateResponse, lang string, wordWrap int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(codeBlock(resp.Response, lang))
	if err != nil {
		return "", fmt.Errorf("failed to render response: %w", err)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("generated code"))
	b.WriteString("\n")
	b.WriteString(out)
	b.WriteString(labelStyle.Render("timestamp"))
	b.WriteString(resp.Timestamp.Format("2006-01-02 15:04:05"))
	b.WriteString("\n")

	return b.String(), nil
}

func codeBlock(code, lang string) string {
	return "```" + strings.TrimSpace(lang) + "\n" + strings.TrimRight(code, "\n") + "\n```\n"
}

func RenderStats(s *StatsResponse) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("service statistics"))
	b.WriteString("\n")
	writeStats(&b, s)

	return b.String()
}

func RenderHealth(h *HealthResponse) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("service health"))
	b.WriteString("\n")
	writeRow(&b, "status", status(h.Status, "healthy"))
	writeRow(&b, "model", status(h.ModelStatus, "ready"))
	writeRow(&b, "telegram bot", status(h.TelegramBotStatus, "active"))
	writeRow(&b, "timestamp", h.Timestamp.Format("2006-01-02 15:04:05"))
	writeStats(&b, &h.Stats)

	return b.String()
}

func writeStats(b *strings.Builder, s *StatsResponse) {
	writeRow(b, "requests", fmt.Sprintf("%d", s.RequestsToday))
	writeRow(b, "successful generations", fmt.Sprintf("%d", s.SuccessfulGenerations))
	writeRow(b, "errors", fmt.Sprintf("%d", s.Errors))
	writeRow(b, "started", s.StartTime.Format("2006-01-02 15:04:05"))
	if s.Uptime != "" {
		writeRow(b, "uptime", s.Uptime)
		writeRow(b, "success rate", fmt.Sprintf("%.2f%%", s.SuccessRate))
	}
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func status(value, good string) string {
	if value == good {
		return okStyle.Render(value)
	}

	return badStyle.Render(value)
}
