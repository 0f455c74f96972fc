package rulepack

//go:generate mockgen -destination=mock/mock_store.go -package=rulepackmock github.com/hydralabs/gear-api/internal/rulepack Store

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
)

// Store provides read access to the active rulepack. Lookups never fail: a
// slot with no configured rules yields an empty SlotRule, which callers must
// treat as "cannot score" rather than "scores zero".
type Store interface {
	// GetRules returns the scoring rules for a slot, or an empty SlotRule
	// if none are configured
	GetRules(slot gear.SlotID) SlotRule

	// GetEntry returns the full slot entry including informational fields
	GetEntry(slot gear.SlotID) (SlotEntry, bool)

	// Sources returns the provenance metadata of the active pack
	Sources() Sources

	// Reload fetches a fresh pack from the loader and swaps it in wholesale.
	// The previous pack stays active if the reload fails.
	Reload(ctx context.Context) error
}

// Loader fetches rulepack content from its external source
type Loader interface {
	Load(ctx context.Context) (*Pack, error)
}

// Config holds the dependencies for the rulepack store
type Config struct {
	Loader Loader
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Loader == nil {
		return errors.InvalidArgument("loader cannot be nil")
	}
	return nil
}

type store struct {
	loader Loader
	pack   atomic.Pointer[Pack]
}

// NewStore creates a rulepack store and performs the initial load
func NewStore(ctx context.Context, cfg *Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &store{loader: cfg.Loader}
	if err := s.Reload(ctx); err != nil {
		return nil, errors.Wrap(err, "initial rulepack load failed")
	}

	return s, nil
}

func (s *store) GetRules(slot gear.SlotID) SlotRule {
	entry, ok := s.GetEntry(slot)
	if !ok {
		return SlotRule{}
	}
	return entry.SlotRule
}

func (s *store) GetEntry(slot gear.SlotID) (SlotEntry, bool) {
	pack := s.pack.Load()
	if pack == nil {
		return SlotEntry{}, false
	}
	entry, ok := pack.Slots[slot]
	return entry, ok
}

func (s *store) Sources() Sources {
	pack := s.pack.Load()
	if pack == nil {
		return Sources{}
	}
	return pack.Sources
}

func (s *store) Reload(ctx context.Context) error {
	pack, err := s.loader.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load rulepack")
	}

	s.pack.Store(pack)
	slog.Info("Rulepack loaded",
		"slots", len(pack.Slots),
		"updated", pack.Sources.Updated,
	)
	return nil
}
