package model

import "time"

// Config is the full engine configuration. Every numeric constant the
// detection pipeline uses is a named parameter here, never a literal in
// component code, so deployments can tune them without rebuilding.
type Config struct {
	// CatalogPath points at a YAML signal catalog. Empty means the builtin
	// catalog is used.
	CatalogPath string `yaml:"catalog_path" json:"catalog_path"`

	Detection   DetectionConfig   `yaml:"detection" json:"detection"`
	Frequency   FrequencyConfig   `yaml:"frequency" json:"frequency"`
	Clustering  ClusteringConfig  `yaml:"clustering" json:"clustering"`
	Scoring     ScoringConfig     `yaml:"scoring" json:"scoring"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// DetectionConfig tunes the keyword matcher.
type DetectionConfig struct {
	// ConfidenceBase is awarded for the first keyword hit.
	ConfidenceBase float64 `yaml:"confidence_base" json:"confidence_base"`
	// ConfidenceStep is added per distinct matched keyword.
	ConfidenceStep float64 `yaml:"confidence_step" json:"confidence_step"`
	// SourceBoost is added when the item's source is one of the signal's
	// authoritative publishers (CEB, NWSDB, Met Department, ...).
	SourceBoost float64 `yaml:"source_boost" json:"source_boost"`
}

// FrequencyConfig tunes the per-signal sliding window.
type FrequencyConfig struct {
	// BucketSize is the time-bucket granularity.
	BucketSize time.Duration `yaml:"bucket_size" json:"bucket_size"`
	// Horizon is the number of buckets retained per signal.
	Horizon int `yaml:"horizon" json:"horizon"`
	// BaselineBuckets is the number of prior buckets averaged into the
	// burst baseline.
	BaselineBuckets int `yaml:"baseline_buckets" json:"baseline_buckets"`
}

// ClusteringConfig tunes the duplicate collapser.
type ClusteringConfig struct {
	// SimilarityThreshold is the minimum cosine similarity between
	// embeddings for two items to count as the same occurrence.
	SimilarityThreshold float64 `yaml:"similarity_threshold" json:"similarity_threshold"`
	// MinSharedKeywords is the keyword-overlap fallback threshold used when
	// embeddings are unavailable.
	MinSharedKeywords int `yaml:"min_shared_keywords" json:"min_shared_keywords"`
	// MaxTimeDelta bounds the publication gap for the keyword fallback.
	MaxTimeDelta time.Duration `yaml:"max_time_delta" json:"max_time_delta"`
}

// ScoringConfig tunes the severity formula.
type ScoringConfig struct {
	ConfidenceWeight float64 `yaml:"confidence_weight" json:"confidence_weight"`
	BurstWeight      float64 `yaml:"burst_weight" json:"burst_weight"`
	SentimentWeight  float64 `yaml:"sentiment_weight" json:"sentiment_weight"`
	PriorityWeight   float64 `yaml:"priority_weight" json:"priority_weight"`

	// Per-priority nudge applied under PriorityWeight.
	HighPriorityValue   float64 `yaml:"high_priority_value" json:"high_priority_value"`
	MediumPriorityValue float64 `yaml:"medium_priority_value" json:"medium_priority_value"`
	LowPriorityValue    float64 `yaml:"low_priority_value" json:"low_priority_value"`
}

// LLMConfig configures the optional LLM candidate-signal source.
type LLMConfig struct {
	// Provider name: "openai", "ollama", or "" (disabled).
	Provider string `yaml:"provider" json:"provider"`
	Model    string `yaml:"model" json:"model"`
	APIKey   string `yaml:"api_key" json:"-"`
	BaseURL  string `yaml:"base_url" json:"base_url"`
	// Timeout per request, in seconds.
	Timeout   int `yaml:"timeout" json:"timeout"`
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// ConfidenceCap bounds LLM-derived match confidence. The LLM is a
	// lower-trust source than keyword evidence.
	ConfidenceCap float64 `yaml:"confidence_cap" json:"confidence_cap"`

	// RequestsPerSecond rate-limits extraction calls.
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	// CacheTTL bounds how long extraction responses are reused.
	CacheTTL time.Duration `yaml:"cache_ttl" json:"cache_ttl"`
	// CacheDir enables the disk cache layer when non-empty.
	CacheDir string `yaml:"cache_dir" json:"cache_dir"`
}

// ConcurrencyConfig bounds worker parallelism.
type ConcurrencyConfig struct {
	// MatchWorkers run keyword matching across items.
	MatchWorkers int `yaml:"match_workers" json:"match_workers"`
	// SignalWorkers run the per-signal collapse/score/classify stages.
	SignalWorkers int `yaml:"signal_workers" json:"signal_workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose        bool `yaml:"verbose" json:"verbose"`
	IncludeSummary bool `yaml:"include_summary" json:"include_summary"`
}

// DefaultConfig returns the documented defaults. The numeric values are
// starting points, not fixed law.
func DefaultConfig() *Config {
	return &Config{
		Detection: DetectionConfig{
			ConfidenceBase: 0.5,
			ConfidenceStep: 0.15,
			SourceBoost:    0.2,
		},
		Frequency: FrequencyConfig{
			BucketSize:      time.Hour,
			Horizon:         14,
			BaselineBuckets: 6,
		},
		Clustering: ClusteringConfig{
			SimilarityThreshold: 0.85,
			MinSharedKeywords:   2,
			MaxTimeDelta:        3 * time.Hour,
		},
		Scoring: ScoringConfig{
			ConfidenceWeight:    0.4,
			BurstWeight:         0.3,
			SentimentWeight:     0.2,
			PriorityWeight:      0.1,
			HighPriorityValue:   1.0,
			MediumPriorityValue: 0.6,
			LowPriorityValue:    0.3,
		},
		LLM: LLMConfig{
			Model:             "gpt-4o-mini",
			Timeout:           30,
			MaxTokens:         1000,
			ConfidenceCap:     0.7,
			RequestsPerSecond: 2,
			CacheTTL:          24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			MatchWorkers:  8,
			SignalWorkers: 8,
		},
		Output: OutputConfig{
			IncludeSummary: true,
		},
	}
}
