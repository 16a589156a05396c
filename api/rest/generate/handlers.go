package generate

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/morozai/core/internal/errors"
	"github.com/morozai/core/internal/llm"
	"github.com/morozai/core/internal/logger"
	"github.com/morozai/core/internal/stats"
)

// Handler godoc
// @Summary Generate code
// @Description Generate code from a natural language prompt. Blocks for the duration of inference.
// @Tags generate
// @Produce json
// @Param prompt query string true "Task description (at least 3 non-whitespace characters)"
// @Param max_tokens query int false "Maximum number of new tokens"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse "raw error text; a generic category when ENVIRONMENT=production"
// @Router /ai_gen [post]
func Handler(gen CodeGenerator, counters Counters, notifier Notifier, runner TaskRunner, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindQuery(&req); err != nil {
			errors.BadRequest(c, maxTokensDetail(opts))
			return
		}

		prompt := strings.TrimSpace(req.Prompt)

		if countNonSpace(prompt) < minPromptLength {
			errors.BadRequest(c, fmt.Sprintf("prompt is too short: at least %d characters required", minPromptLength))
			return
		}

		maxTokens := opts.DefaultMaxTokens
		if req.MaxTokens != nil {
			maxTokens = *req.MaxTokens
		}

		if opts.MaxTokensLimit > 0 && maxTokens > opts.MaxTokensLimit {
			errors.BadRequest(c, maxTokensDetail(opts))
			return
		}

		// only validated requests are counted
		counters.IncRequests()

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		log.Info("generating code", "prompt", preview(prompt, 50), "max_tokens", maxTokens)

		start := time.Now()
		result, err := gen.GenerateCode(ctx, prompt, maxTokens)

		if err != nil {
			counters.IncErrors()

			outcome := stats.OutcomeError
			if stderrors.Is(err, llm.ErrNotReady) {
				outcome = stats.OutcomeNotReady
			}
			counters.ObserveGeneration(time.Since(start), outcome)

			errors.InternalError(c, "code generation failed", err)
			return
		}

		counters.IncSuccesses()
		counters.ObserveGeneration(time.Since(start), stats.OutcomeSuccess)

		if notifier != nil && notifier.IsRunning() {
			scheduleNotification(runner, notifier, prompt, result)
		}

		c.JSON(http.StatusOK, Response{
			Response:  result,
			Timestamp: time.Now(),
		})
	}
}

// hands the notification to the runner; its outcome never reaches the client
func scheduleNotification(runner TaskRunner, notifier Notifier, prompt, result string) {
	if runner == nil {
		return
	}

	runner.Go("telegram-notification", func(ctx context.Context) error {
		return notifier.SendGenerationNotification(ctx, prompt, result)
	})
}

// prompt binds as a plain string, so a bind failure always concerns max_tokens
func maxTokensDetail(opts Options) string {
	if opts.MaxTokensLimit > 0 {
		return fmt.Sprintf("max_tokens must be an integer between 1 and %d", opts.MaxTokensLimit)
	}

	return "max_tokens must be a positive integer"
}

func countNonSpace(s string) int {
	n := 0

	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}

	return n
}

// first n runes of s, for logging
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
