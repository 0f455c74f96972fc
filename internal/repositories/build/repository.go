// Package build provides the interface for equipped-build persistence
package build

//go:generate mockgen -destination=mock/mock_repository.go -package=buildmock github.com/hydralabs/gear-api/internal/repositories/build Repository

import (
	"context"

	"github.com/hydralabs/gear-api/internal/entities/gear"
)

// Repository defines the interface for equipped-build persistence. A build
// holds at most one item per slot plus free-text notes, keyed by profile.
type Repository interface {
	// GetSlot retrieves the equipped item for one slot
	// Returns errors.NotFound if the slot is empty
	GetSlot(ctx context.Context, input GetSlotInput) (*GetSlotOutput, error)

	// SetSlot stores an item into its slot, replacing any existing item
	SetSlot(ctx context.Context, input SetSlotInput) (*SetSlotOutput, error)

	// ClearSlot removes the item from one slot
	// Returns errors.NotFound if the slot is already empty
	ClearSlot(ctx context.Context, input ClearSlotInput) (*ClearSlotOutput, error)

	// GetBuild retrieves the full equipped set and notes. Empty slots are
	// simply absent from the map; a build that was never written is empty,
	// not an error.
	GetBuild(ctx context.Context, input GetBuildInput) (*GetBuildOutput, error)

	// Clear removes all equipped items and notes for a profile
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)

	// SetNotes replaces the build notes
	SetNotes(ctx context.Context, input SetNotesInput) (*SetNotesOutput, error)
}

// GetSlotInput defines the input for reading one slot
type GetSlotInput struct {
	ProfileID string
	Slot      gear.SlotID
}

// GetSlotOutput defines the output for reading one slot
type GetSlotOutput struct {
	Item *gear.Item
}

// SetSlotInput defines the input for equipping an item
type SetSlotInput struct {
	ProfileID string
	Slot      gear.SlotID
	Item      *gear.Item
}

// SetSlotOutput defines the output for equipping an item
type SetSlotOutput struct {
	Item *gear.Item
}

// ClearSlotInput defines the input for clearing one slot
type ClearSlotInput struct {
	ProfileID string
	Slot      gear.SlotID
}

// ClearSlotOutput defines the output for clearing one slot
type ClearSlotOutput struct{}

// GetBuildInput defines the input for reading the whole build
type GetBuildInput struct {
	ProfileID string
}

// GetBuildOutput defines the output for reading the whole build
type GetBuildOutput struct {
	Slots map[gear.SlotID]*gear.Item
	Notes string
}

// ClearInput defines the input for clearing a build
type ClearInput struct {
	ProfileID string
}

// ClearOutput defines the output for clearing a build
type ClearOutput struct{}

// SetNotesInput defines the input for replacing notes
type SetNotesInput struct {
	ProfileID string
	Notes     string
}

// SetNotesOutput defines the output for replacing notes
type SetNotesOutput struct{}
