package llm

import (
	"fmt"
	"strings"
)

const promptTemplate = "# Task: %s\n# Solution:\n"

// wraps a user prompt in the instructional template sent to the model
func BuildPrompt(prompt string) string {
	return fmt.Sprintf(promptTemplate, prompt)
}

// removes the echoed template from decoded output
func StripPrompt(output, enhancedPrompt string) string {
	return strings.TrimSpace(strings.ReplaceAll(output, enhancedPrompt, ""))
}
