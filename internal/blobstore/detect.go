// Package blobstore defines the object-store side of file handling: the
// provider adapter lives in a subpackage, while the resource-kind detection
// chain is kept here as a pure function so it can be tested against a fake
// probe.
package blobstore

import (
	"context"
	"time"

	"drivebox/internal/domain/models"
)

// Probe reports whether a blob exists in the store under the given kind.
// A nil error means the store answered a metadata lookup for that kind.
type Probe func(ctx context.Context, publicID string, kind models.ResourceKind) error

// DetectOrder is the fixed probe sequence. Raw goes first because a failed
// probe is cheap and raw covers the most arbitrary content; image is the
// last-resort default because it is the most common kind in practice.
var DetectOrder = []models.ResourceKind{models.KindRaw, models.KindImage, models.KindVideo}

// FallbackKind is returned when every probe fails. It is an arbitrary
// default, not a confident inference.
const FallbackKind = models.KindImage

// DetectKind walks DetectOrder and returns the first kind whose probe
// succeeds. perProbeTimeout caps each individual probe (0 = no cap); a
// timeout counts as that probe's failure and the chain advances.
func DetectKind(ctx context.Context, publicID string, probe Probe, perProbeTimeout time.Duration) models.ResourceKind {
	for _, kind := range DetectOrder {
		probeCtx := ctx
		var cancel context.CancelFunc
		if perProbeTimeout > 0 {
			probeCtx, cancel = context.WithTimeout(ctx, perProbeTimeout)
		}

		err := probe(probeCtx, publicID, kind)
		if cancel != nil {
			cancel()
		}
		if err == nil {
			return kind
		}
	}

	return FallbackKind
}
