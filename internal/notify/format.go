package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/morozai/core/internal/stats"
)

// Telegram rejects messages longer than 4096 characters
const (
	maxPromptRunes = 500
	maxResultRunes = 3000
)

// builds the HTML notification sent after a successful generation
func formatGenerationMessage(prompt, result string) string {
	var b strings.Builder

	b.WriteString("<b>🤖 New code generation</b>\n\n")
	b.WriteString("<b>Prompt:</b>\n<i>")
	b.WriteString(html.EscapeString(truncate(strings.TrimSpace(prompt), maxPromptRunes)))
	b.WriteString("</i>\n\n<b>Result:</b>\n<pre>")
	b.WriteString(html.EscapeString(truncate(result, maxResultRunes)))
	b.WriteString("</pre>")

	return b.String()
}

func formatStatsMessage(snap stats.Snapshot, uptime time.Duration) string {
	return fmt.Sprintf(
		"<b>📊 MorozAI stats</b>\n\nRequests: %d\nSuccessful: %d\nErrors: %d\nSuccess rate: %.2f%%\nUptime: %s",
		snap.RequestsToday,
		snap.SuccessfulGenerations,
		snap.Errors,
		snap.SuccessRate(),
		uptime,
	)
}

const helpMessage = "<b>MorozAI Core bot</b>\n\n" +
	"I post every successful code generation to this chat.\n\n" +
	"/stats - service counters\n" +
	"/help - this message"

// cuts s to at most limit runes, marking the cut with an ellipsis
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-1]) + "…"
}
