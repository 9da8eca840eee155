// Package event assembles the final immutable Event records.
package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ceylonpulse/signalengine/internal/cluster"
	"github.com/ceylonpulse/signalengine/internal/model"
	"github.com/ceylonpulse/signalengine/internal/textutil"
)

// eventNamespace seeds the SHA1 UUID derivation for event ids.
var eventNamespace = uuid.MustParse("7d1f9e60-3b5a-4c8e-9a21-ce7b1a4c5d02")

// rawTextLimit bounds the excerpt carried on an event.
const rawTextLimit = 500

// ContractError reports an upstream contract violation detected at
// assembly time. The affected event is dropped; the batch continues.
type ContractError struct {
	SignalID string
	Reason   string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("event contract violation for signal %q: %s", e.SignalID, e.Reason)
}

// ID derives the event identifier from (signal id, time bucket,
// representative item id). Re-running the pipeline over the same batch
// yields the same id, so replays never create duplicate events.
func ID(signalID string, bucket time.Time, representativeItemID string) string {
	name := signalID + "|" + bucket.UTC().Format(time.RFC3339) + "|" + representativeItemID
	return uuid.NewSHA1(eventNamespace, []byte(name)).String()
}

// Build assembles one Event from a scored, classified cluster. It
// performs no further scoring, only assembly and contract validation.
func Build(cl *cluster.Cluster, bucket time.Time, severity float64, change *float64, pestle model.PestleCategory, swot model.SwotLabel) (*model.Event, error) {
	if severity < 0 || severity > 1 {
		return nil, &ContractError{SignalID: cl.SignalID, Reason: fmt.Sprintf("severity %v outside [0,1]", severity)}
	}
	if !pestle.Valid() {
		return nil, &ContractError{SignalID: cl.SignalID, Reason: fmt.Sprintf("pestle %q unset or invalid", pestle)}
	}
	if !swot.Valid() {
		return nil, &ContractError{SignalID: cl.SignalID, Reason: fmt.Sprintf("swot %q unset or invalid", swot)}
	}
	rep := cl.Representative
	if rep == nil {
		return nil, &ContractError{SignalID: cl.SignalID, Reason: "cluster has no representative item"}
	}

	raw := rep.Title
	if rep.Body != "" {
		raw = raw + " " + rep.Body
	}

	return &model.Event{
		EventID:         ID(cl.SignalID, bucket, rep.ItemID),
		SignalID:        cl.SignalID,
		Severity:        severity,
		Sentiment:       rep.Sentiment,
		Location:        cl.Location,
		FrequencyChange: change,
		Timestamp:       rep.PublishedAt,
		Pestle:          pestle,
		Swot:            swot,
		RawText:         textutil.Excerpt(raw, rawTextLimit),
	}, nil
}
