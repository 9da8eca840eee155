package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ceylonpulse/signalengine/internal/model"
	"github.com/ceylonpulse/signalengine/internal/pipeline"
	"github.com/ceylonpulse/signalengine/internal/report"
)

var (
	outJSON      string
	catalogPath  string
	timeout      time.Duration
	withTrends   bool
	llmProvider  string
	llmModel     string
	llmBaseURL   string
	llmCacheDir  string
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect <items-file>",
	Short: "Run signal detection over a batch of collected items",
	Long: `Detect processes one batch of text items and emits classified,
scored events plus the query surface a dashboard consumes (PESTLE
distribution, SWOT summary, top signals, frequency trends).

The items file holds either a JSON array of items or one JSON item per
line. Each item needs item_id, published_at, and a title or body;
entities, embedding, and sentiment are optional.

Example:
  signalengine detect batch.json
  signalengine detect batch.json --json events.json --trends
  signalengine detect batch.json --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (default: stdout summary only)")
	detectCmd.Flags().StringVar(&catalogPath, "catalog", "", "signal catalog YAML (default: builtin catalog)")
	detectCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall batch timeout")
	detectCmd.Flags().BoolVar(&withTrends, "trends", false, "include per-signal frequency windows in the output")

	detectCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "enable LLM candidate extraction (openai, ollama)")
	detectCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	detectCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "LLM endpoint override")
	detectCmd.Flags().StringVar(&llmCacheDir, "llm-cache-dir", "", "persist LLM responses under this directory")
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg := buildConfig()

	items, err := loadItems(args[0])
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d items from %s\n", len(items), args[0])
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	res, err := p.ProcessBatch(ctx, items)
	if err != nil {
		return err
	}

	var trends []report.SignalTrend
	if withTrends {
		trends = report.SignalTrends(p.Tracker().Snapshots())
	}
	out := report.BuildOutput(res.Events, trends, time.Now())

	if outJSON != "" {
		if err := report.WriteJSON(out, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outJSON)
		}
	}
	if cfg.Output.IncludeSummary {
		report.RenderSummary(os.Stdout, out)
	}
	return nil
}

// buildConfig layers defaults, config file values, and flags.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	applyViper(cfg)

	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if llmBaseURL != "" {
		cfg.LLM.BaseURL = llmBaseURL
	}
	if llmCacheDir != "" {
		cfg.LLM.CacheDir = llmCacheDir
	}
	if cfg.LLM.Provider == "openai" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	cfg.Output.Verbose = verbose
	return cfg
}

// loadItems reads a JSON array of items, or one JSON item per line.
func loadItems(path string) ([]model.TextItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open items file: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	first, err := peekNonSpace(r)
	if err == io.EOF {
		// Empty file: a valid, empty batch.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}

	if first == '[' {
		var items []model.TextItem
		if err := json.NewDecoder(r).Decode(&items); err != nil {
			return nil, fmt.Errorf("parse items array: %w", err)
		}
		return items, nil
	}

	// JSON lines
	var items []model.TextItem
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var item model.TextItem
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			return nil, fmt.Errorf("parse item on line %d: %w", line, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan items file: %w", err)
	}
	return items, nil
}

// peekNonSpace returns the first non-whitespace byte without consuming
// meaningful input.
func peekNonSpace(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\n', '\r':
			if _, err := r.ReadByte(); err != nil {
				return 0, err
			}
		default:
			return b[0], nil
		}
	}
}
