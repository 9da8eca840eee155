package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ceylonpulse/signalengine/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage engine configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to $HOME/.signalengine/config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		dir := filepath.Join(home, ".signalengine")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		data, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// applyViper overlays file/env settings onto cfg. Only keys the user
// actually set are applied, so DefaultConfig stays authoritative.
func applyViper(cfg *model.Config) {
	if viper.IsSet("catalog_path") {
		cfg.CatalogPath = viper.GetString("catalog_path")
	}
	if viper.IsSet("detection.confidence_base") {
		cfg.Detection.ConfidenceBase = viper.GetFloat64("detection.confidence_base")
	}
	if viper.IsSet("detection.confidence_step") {
		cfg.Detection.ConfidenceStep = viper.GetFloat64("detection.confidence_step")
	}
	if viper.IsSet("detection.source_boost") {
		cfg.Detection.SourceBoost = viper.GetFloat64("detection.source_boost")
	}
	if viper.IsSet("frequency.bucket_size") {
		cfg.Frequency.BucketSize = viper.GetDuration("frequency.bucket_size")
	}
	if viper.IsSet("frequency.horizon") {
		cfg.Frequency.Horizon = viper.GetInt("frequency.horizon")
	}
	if viper.IsSet("frequency.baseline_buckets") {
		cfg.Frequency.BaselineBuckets = viper.GetInt("frequency.baseline_buckets")
	}
	if viper.IsSet("clustering.similarity_threshold") {
		cfg.Clustering.SimilarityThreshold = viper.GetFloat64("clustering.similarity_threshold")
	}
	if viper.IsSet("clustering.min_shared_keywords") {
		cfg.Clustering.MinSharedKeywords = viper.GetInt("clustering.min_shared_keywords")
	}
	if viper.IsSet("clustering.max_time_delta") {
		cfg.Clustering.MaxTimeDelta = viper.GetDuration("clustering.max_time_delta")
	}
	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}
	if viper.IsSet("llm.api_key") {
		cfg.LLM.APIKey = viper.GetString("llm.api_key")
	}
	if viper.IsSet("llm.base_url") {
		cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	}
	if viper.IsSet("llm.cache_dir") {
		cfg.LLM.CacheDir = viper.GetString("llm.cache_dir")
	}
	if viper.IsSet("concurrency.match_workers") {
		cfg.Concurrency.MatchWorkers = viper.GetInt("concurrency.match_workers")
	}
	if viper.IsSet("concurrency.signal_workers") {
		cfg.Concurrency.SignalWorkers = viper.GetInt("concurrency.signal_workers")
	}
}
