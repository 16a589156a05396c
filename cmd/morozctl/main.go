package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/morozai/core/internal/client"
)

func usage() {
	fmt.Println("Usage: morozctl <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  gen <prompt>  - generate code for a task description")
	fmt.Println("  stats         - show service statistics")
	fmt.Println("  health        - show service health")
	fmt.Println("\nOptions:")
	fmt.Println("  --endpoint <url>  - API endpoint (default $MOROZAI_API_ENDPOINT or http://localhost:8000)")
	fmt.Println("  --max-tokens <n>  - maximum new tokens for gen")
	fmt.Println("  --lang <name>     - language used to highlight generated code")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// a local .env may carry MOROZAI_API_ENDPOINT
	_ = godotenv.Load()

	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	endpoint := fs.String("endpoint", "", "API endpoint")
	maxTokens := fs.Int("max-tokens", 0, "maximum new tokens")
	wordWrap := fs.Int("wrap", 100, "word wrap width for rendered code")
	lang := fs.String("lang", "", "language tag for syntax highlighting, e.g. python")
	args := parseInterspersed(fs, os.Args[2:])

	c := client.New(*endpoint)
	ctx := context.Background()

	var err error
	switch command {
	case "gen":
		err = runGenerate(ctx, c, strings.Join(args, " "), *maxTokens, *lang, *wordWrap)
	case "stats":
		err = runStats(ctx, c)
	case "health":
		err = runHealth(ctx, c)
	default:
		fmt.Printf("unknown command: %s\n\n", command)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (endpoint %s)\n", err, c.Endpoint())
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, c *client.Client, prompt string, maxTokens int, lang string, wordWrap int) error {
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("a prompt is required: morozctl gen <prompt>")
	}

	resp, err := c.Generate(ctx, prompt, maxTokens)
	if err != nil {
		return err
	}

	out, err := client.RenderGeneration(resp, lang, wordWrap)
	if err != nil {
		return err
	}

	fmt.Print(out)
	return nil
}

func runStats(ctx context.Context, c *client.Client) error {
	resp, err := c.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Print(client.RenderStats(resp))
	return nil
}

func runHealth(ctx context.Context, c *client.Client) error {
	resp, err := c.Health(ctx)
	if err != nil {
		return err
	}

	fmt.Print(client.RenderHealth(resp))
	return nil
}

// parses flags that may appear before or after positional arguments and
// returns the positionals in order
func parseInterspersed(fs *flag.FlagSet, args []string) []string {
	var positional []string
	for {
		fs.Parse(args) //nolint:errcheck
		if fs.NArg() == 0 {
			return positional
		}

		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}
}
