// Package cluster collapses near-duplicate items so one underlying
// occurrence yields one event rather than N.
package cluster

import (
	"sort"
	"strings"

	"github.com/ceylonpulse/signalengine/internal/model"
)

// Cluster is a group of items judged to describe the same occurrence of
// one signal within a batch.
type Cluster struct {
	ClusterID string
	SignalID  string
	ItemIDs   []string
	Matches   []model.CandidateMatch

	// Representative is the earliest-published member.
	Representative *model.TextItem

	// Keywords is the union of matched keywords across members, and
	// Confidence the maximum member confidence. One clear keyword hit is
	// not diluted by weak paraphrase repeats.
	Keywords   []string
	Confidence float64
	Location   string
}

// Collapser groups a signal's matches into clusters.
type Collapser struct {
	cfg model.ClusteringConfig
}

// New creates a collapser with the given thresholds.
func New(cfg model.ClusteringConfig) *Collapser {
	return &Collapser{cfg: cfg}
}

// member pairs an item with the (merged) keywords that matched it.
type member struct {
	item     *model.TextItem
	keywords []string
}

// Collapse partitions one signal's matched items into clusters using
// greedy single-link assignment in ascending published_at order. Every
// matched item lands in exactly one cluster; processing order makes the
// earliest item the representative and keeps the result deterministic.
func (c *Collapser) Collapse(signalID string, matches []model.CandidateMatch, items map[string]*model.TextItem) []Cluster {
	if len(matches) == 0 {
		return nil
	}

	// Group matches per item; the keyword and LLM sources may both have
	// matched the same item.
	byItem := make(map[string][]model.CandidateMatch)
	for _, m := range matches {
		byItem[m.ItemID] = append(byItem[m.ItemID], m)
	}

	members := make([]member, 0, len(byItem))
	for itemID, ms := range byItem {
		item, ok := items[itemID]
		if !ok {
			continue
		}
		members = append(members, member{item: item, keywords: unionKeywords(ms)})
	}
	sort.Slice(members, func(i, j int) bool {
		a, b := members[i].item, members[j].item
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.Before(b.PublishedAt)
		}
		return a.ItemID < b.ItemID
	})

	var clusters []Cluster
	clusterMembers := make(map[int][]member)

	for _, m := range members {
		assigned := -1
		for ci := range clusters {
			for _, existing := range clusterMembers[ci] {
				if c.sameOccurrence(existing, m) {
					assigned = ci
					break
				}
			}
			if assigned >= 0 {
				break
			}
		}
		if assigned < 0 {
			clusters = append(clusters, Cluster{
				ClusterID:      signalID + "/" + m.item.ItemID,
				SignalID:       signalID,
				Representative: m.item,
			})
			assigned = len(clusters) - 1
		}
		clusterMembers[assigned] = append(clusterMembers[assigned], m)
		clusters[assigned].ItemIDs = append(clusters[assigned].ItemIDs, m.item.ItemID)
	}

	for ci := range clusters {
		cl := &clusters[ci]
		for _, m := range clusterMembers[ci] {
			for _, cm := range byItem[m.item.ItemID] {
				cl.Matches = append(cl.Matches, cm)
				if cm.Confidence > cl.Confidence {
					cl.Confidence = cm.Confidence
				}
				if cl.Location == "" && cm.Location != "" {
					cl.Location = cm.Location
				}
			}
			cl.Keywords = mergeKeywords(cl.Keywords, m.keywords)
		}
	}

	return clusters
}

// sameOccurrence decides whether two items describe the same real-world
// occurrence. With embeddings on both sides, cosine similarity decides;
// with embeddings on neither, shared matched keywords within a short
// publication window decide. A mixed pair is never merged: the two rules
// are not comparable.
func (c *Collapser) sameOccurrence(a, b member) bool {
	aEmb, bEmb := len(a.item.Embedding) > 0, len(b.item.Embedding) > 0
	switch {
	case aEmb && bEmb:
		return Cosine(a.item.Embedding, b.item.Embedding) >= c.cfg.SimilarityThreshold
	case !aEmb && !bEmb:
		if sharedKeywords(a.keywords, b.keywords) < c.cfg.MinSharedKeywords {
			return false
		}
		delta := b.item.PublishedAt.Sub(a.item.PublishedAt)
		if delta < 0 {
			delta = -delta
		}
		return delta <= c.cfg.MaxTimeDelta
	default:
		return false
	}
}

func unionKeywords(ms []model.CandidateMatch) []string {
	var out []string
	for _, m := range ms {
		out = mergeKeywords(out, m.MatchedKeywords)
	}
	return out
}

// mergeKeywords appends the keywords of b not already in a, preserving
// first-seen order.
func mergeKeywords(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, k := range a {
		seen[strings.ToLower(k)] = struct{}{}
	}
	for _, k := range b {
		lk := strings.ToLower(k)
		if _, ok := seen[lk]; !ok {
			seen[lk] = struct{}{}
			a = append(a, k)
		}
	}
	return a
}
