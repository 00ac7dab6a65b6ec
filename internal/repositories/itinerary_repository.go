package repositories

import (
	"context"
	"fmt"
	"unicode/utf8"

	"travelhelper/pkg/kvstore"
	"travelhelper/pkg/utils"
)

type LookupStatus int

const (
	LookupMiss LookupStatus = iota
	LookupHit
	// LookupUndecodable means bytes exist under the tag but are not UTF-8 text.
	LookupUndecodable
	LookupBackendError
)

func (s LookupStatus) String() string {
	switch s {
	case LookupHit:
		return "hit"
	case LookupMiss:
		return "miss"
	case LookupUndecodable:
		return "undecodable"
	case LookupBackendError:
		return "backend_error"
	default:
		return fmt.Sprintf("LookupStatus(%d)", int(s))
	}
}

// Lookup is the outcome of fetching an itinerary. Only a hit carries text;
// Err is set for LookupBackendError.
type Lookup struct {
	Status    LookupStatus
	Itinerary string
	Err       error
}

func (l Lookup) Found() bool {
	return l.Status == LookupHit
}

type ItineraryRepositoryInterface interface {
	Fetch(ctx context.Context, tag string) Lookup
	Store(ctx context.Context, tag string, itinerary string) error
}

type ItineraryRepository struct {
	store kvstore.Store
}

func NewItineraryRepository(store kvstore.Store) ItineraryRepositoryInterface {
	return &ItineraryRepository{store: store}
}

func (r *ItineraryRepository) Fetch(ctx context.Context, tag string) Lookup {
	raw, found, err := r.store.Get(ctx, tag)
	if err != nil {
		return Lookup{Status: LookupBackendError, Err: fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)}
	}
	if !found {
		return Lookup{Status: LookupMiss}
	}
	if !utf8.Valid(raw) {
		return Lookup{Status: LookupUndecodable}
	}
	return Lookup{Status: LookupHit, Itinerary: string(raw)}
}

func (r *ItineraryRepository) Store(ctx context.Context, tag string, itinerary string) error {
	if err := r.store.Set(ctx, tag, []byte(itinerary)); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
	}
	return nil
}
