package routing

import (
	"context"
	"log/slog"
	"time"

	"wayfinder.gobus.org/internal/logging"
	"wayfinder.gobus.org/internal/models"
	"wayfinder.gobus.org/internal/schedule"
)

// Default bounds applied when a request or deployment does not override them.
const (
	DefaultMaxTransfers   = 2
	DefaultTransferBuffer = 5 * time.Minute
)

// Options configures a Planner.
type Options struct {
	// DefaultMaxTransfers bounds searches whose request carries no
	// explicit transfer limit.
	DefaultMaxTransfers int
	// TransferBuffer is the minimum connection time between alighting
	// one leg and boarding the next.
	TransferBuffer time.Duration
}

// DefaultOptions returns the stock planner configuration.
func DefaultOptions() Options {
	return Options{
		DefaultMaxTransfers: DefaultMaxTransfers,
		TransferBuffer:      DefaultTransferBuffer,
	}
}

// Enricher attaches display names and other presentation fields to a
// finished itinerary list. Enrichment is best-effort: a failing enricher
// never fails the search.
type Enricher interface {
	Enrich(ctx context.Context, snapshot *schedule.Snapshot, itineraries []models.Itinerary, locale string) error
}

// Planner runs the full route resolution pipeline over one snapshot per
// call: request validation, single-leg and multi-leg resolution, dedup and
// ranking, then best-effort enrichment. A Planner holds no mutable state, so
// one instance serves concurrent searches without synchronization.
type Planner struct {
	opts     Options
	enricher Enricher
}

// NewPlanner creates a Planner. enricher may be nil, in which case results
// are returned unenriched.
func NewPlanner(opts Options, enricher Enricher) *Planner {
	return &Planner{
		opts:     opts,
		enricher: enricher,
	}
}

// Plan answers one search request against the given snapshot. The returned
// list is ranked and deduplicated; an empty list is the valid "no itinerary
// found" outcome. Errors are only returned for invalid requests, before any
// search work happens.
func (p *Planner) Plan(ctx context.Context, snapshot *schedule.Snapshot, req models.SearchRequest) ([]models.Itinerary, error) {
	if !snapshot.HasLocation(req.OriginID) {
		return nil, &UnknownLocationError{ID: req.OriginID}
	}
	if !snapshot.HasLocation(req.DestinationID) {
		return nil, &UnknownLocationError{ID: req.DestinationID}
	}
	if req.OriginID == req.DestinationID {
		return nil, ErrSameLocation
	}

	maxTransfers := p.opts.DefaultMaxTransfers
	if req.MaxTransfers != nil {
		if *req.MaxTransfers < 0 {
			return nil, ErrNegativeTransferLimit
		}
		maxTransfers = *req.MaxTransfers
	}

	singleLegs := ResolveSingleLeg(snapshot, req.OriginID, req.DestinationID)

	graph := BuildAdjacency(snapshot)
	multiLeg := ResolveMultiLeg(graph, req.OriginID, req.DestinationID, maxTransfers, p.opts.TransferBuffer)

	itineraries := Finalize(singleLegs, multiLeg)

	if p.enricher != nil && len(itineraries) > 0 {
		if err := p.enricher.Enrich(ctx, snapshot, itineraries, req.Locale); err != nil {
			// Display enrichment is best-effort; the unenriched
			// results are still correct.
			logging.LogError(logging.FromContext(ctx), "itinerary enrichment failed", err,
				slog.String("locale", req.Locale))
		}
	}

	return itineraries, nil
}
