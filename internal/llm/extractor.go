package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/time/rate"

	"github.com/ceylonpulse/signalengine/internal/cache"
	"github.com/ceylonpulse/signalengine/internal/catalog"
	"github.com/ceylonpulse/signalengine/internal/logger"
	"github.com/ceylonpulse/signalengine/internal/model"
	"github.com/ceylonpulse/signalengine/internal/textutil"
)

// promptTextLimit bounds how much item text is sent per request.
const promptTextLimit = 2000

// jsonArrayPattern pulls the first JSON array out of a chatty response.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// Extractor turns LLM completions into candidate matches. Responses are
// cached by content hash and requests are rate limited, so reprocessing
// overlapping batches stays cheap and polite.
type Extractor struct {
	provider Provider
	cfg      model.LLMConfig
	store    cache.Cache
	limiter  *rate.Limiter
}

// NewExtractor wires a provider with its cache and rate limiter. A nil
// provider yields a nil extractor, which extracts nothing.
func NewExtractor(provider Provider, cfg model.LLMConfig) *Extractor {
	if provider == nil {
		return nil
	}

	var store cache.Cache
	if cfg.CacheDir != "" {
		store = cache.NewLayeredCache(cfg.CacheTTL, cfg.CacheDir, cfg.CacheTTL)
	} else {
		store = cache.NewMemoryCache(cfg.CacheTTL, cfg.CacheTTL)
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Extractor{
		provider: provider,
		cfg:      cfg,
		store:    store,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// extractedSignal is the JSON shape the model is asked to emit.
type extractedSignal struct {
	SignalName string   `json:"signal_name"`
	Confidence float64  `json:"confidence"`
	KeyPhrases []string `json:"key_phrases"`
}

// ExtractItem asks the provider which catalog signals the item text
// indicates and maps the answer onto candidate matches. Unknown signal
// names are dropped; confidence is clamped to the configured cap.
func (e *Extractor) ExtractItem(ctx context.Context, item *model.TextItem, cat *catalog.Catalog) ([]model.CandidateMatch, error) {
	if e == nil {
		return nil, nil
	}

	text := textutil.Excerpt(textutil.VisibleText(item.Title+" "+item.Body), promptTextLimit)
	key := cache.Key(text)

	raw, found := e.store.Get(key)
	if !found {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		resp, err := e.provider.Complete(ctx, buildPrompt(text, cat))
		if err != nil {
			return nil, fmt.Errorf("llm extraction: %w", err)
		}
		raw = []byte(resp)
		if err := e.store.Set(key, raw, e.cfg.CacheTTL); err != nil {
			logger.Debug("llm cache store failed: %v", err)
		}
	}

	return e.toMatches(item, cat, parseResponse(string(raw))), nil
}

// ExtractBatch runs ExtractItem across a batch, logging and skipping
// per-item failures. LLM unavailability degrades detection, it never
// fails the batch.
func (e *Extractor) ExtractBatch(ctx context.Context, items []*model.TextItem, cat *catalog.Catalog) []model.CandidateMatch {
	if e == nil {
		return nil
	}
	var out []model.CandidateMatch
	for _, item := range items {
		if ctx.Err() != nil {
			return out
		}
		matches, err := e.ExtractItem(ctx, item, cat)
		if err != nil {
			logger.Warn("llm extraction failed for item %s: %v", item.ItemID, err)
			continue
		}
		out = append(out, matches...)
	}
	return out
}

func (e *Extractor) toMatches(item *model.TextItem, cat *catalog.Catalog, signals []extractedSignal) []model.CandidateMatch {
	var out []model.CandidateMatch
	for _, s := range signals {
		def, ok := cat.LookupByName(s.SignalName)
		if !ok {
			if def, ok = cat.Lookup(s.SignalName); !ok {
				logger.Debug("llm returned unknown signal %q", s.SignalName)
				continue
			}
		}

		confidence := s.Confidence
		if confidence <= 0 {
			continue
		}
		if confidence > e.cfg.ConfidenceCap {
			confidence = e.cfg.ConfidenceCap
		}

		keywords := s.KeyPhrases
		if len(keywords) == 0 {
			keywords = []string{def.Name}
		}

		out = append(out, model.CandidateMatch{
			ItemID:          item.ItemID,
			SignalID:        def.SignalID,
			MatchedKeywords: keywords,
			Confidence:      confidence,
			Source:          model.MatchSourceLLM,
			Location:        item.Location(),
		})
	}
	return out
}

func buildPrompt(text string, cat *catalog.Catalog) string {
	var names []string
	for _, def := range cat.All() {
		names = append(names, def.Name)
	}

	var b strings.Builder
	b.WriteString("Identify which of the following monitored signals the text indicates.\n\n")
	b.WriteString("Signals:\n")
	for _, n := range names {
		b.WriteString("- ")
		b.WriteString(n)
		b.WriteString("\n")
	}
	b.WriteString("\nText:\n")
	b.WriteString(text)
	b.WriteString("\n\nReturn a JSON array of objects with fields signal_name (exactly as listed), confidence (0-1), and key_phrases (phrases from the text). Return [] when nothing matches.\n")
	return b.String()
}

// parseResponse tolerates prose around the JSON payload and malformed
// entries; a response that cannot be parsed yields no matches.
func parseResponse(content string) []extractedSignal {
	payload := content
	if m := jsonArrayPattern.FindString(content); m != "" {
		payload = m
	}
	var signals []extractedSignal
	if err := json.Unmarshal([]byte(payload), &signals); err != nil {
		logger.Debug("llm response not parseable as signal array: %v", err)
		return nil
	}
	return signals
}
