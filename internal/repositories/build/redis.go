package build

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
	redisclient "github.com/hydralabs/gear-api/internal/redis"
)

const (
	// Error messages
	errProfileIDEmpty = "profile ID cannot be empty"
)

func slotKey(profileID string, slot gear.SlotID) string {
	return fmt.Sprintf("build:%s:slot:%s", profileID, slot)
}

func notesKey(profileID string) string {
	return fmt.Sprintf("build:%s:notes", profileID)
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis build repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed build repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) GetSlot(ctx context.Context, input GetSlotInput) (*GetSlotOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("invalid slot %q", input.Slot)
	}

	result, err := r.client.Get(ctx, slotKey(input.ProfileID, input.Slot)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no item equipped in slot %s", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to get slot %s", input.Slot)
	}

	var item gear.Item
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item in slot %s", input.Slot)
	}

	return &GetSlotOutput{Item: &item}, nil
}

func (r *redisRepository) SetSlot(ctx context.Context, input SetSlotInput) (*SetSlotOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("invalid slot %q", input.Slot)
	}
	if input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}
	if input.Item.Slot != input.Slot {
		return nil, errors.InvalidArgumentf("item slot %q does not match target slot %q", input.Item.Slot, input.Slot)
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item")
	}

	if err := r.client.Set(ctx, slotKey(input.ProfileID, input.Slot), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set slot %s", input.Slot)
	}

	return &SetSlotOutput{Item: input.Item}, nil
}

func (r *redisRepository) ClearSlot(ctx context.Context, input ClearSlotInput) (*ClearSlotOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("invalid slot %q", input.Slot)
	}

	deleted, err := r.client.Del(ctx, slotKey(input.ProfileID, input.Slot)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear slot %s", input.Slot)
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("no item equipped in slot %s", input.Slot)
	}

	return &ClearSlotOutput{}, nil
}

func (r *redisRepository) GetBuild(ctx context.Context, input GetBuildInput) (*GetBuildOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	slots := gear.AllSlots()
	keys := make([]string, 0, len(slots)+1)
	for _, slot := range slots {
		keys = append(keys, slotKey(input.ProfileID, slot))
	}
	keys = append(keys, notesKey(input.ProfileID))

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}

	out := &GetBuildOutput{
		Slots: make(map[gear.SlotID]*gear.Item),
	}

	for i, slot := range slots {
		raw, ok := values[i].(string)
		if !ok {
			continue
		}
		var item gear.Item
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal item in slot %s", slot)
		}
		out.Slots[slot] = &item
	}

	if notes, ok := values[len(slots)].(string); ok {
		out.Notes = notes
	}

	return out, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	keys := make([]string, 0, len(gear.AllSlots())+1)
	for _, slot := range gear.AllSlots() {
		keys = append(keys, slotKey(input.ProfileID, slot))
	}
	keys = append(keys, notesKey(input.ProfileID))

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to clear build")
	}

	return &ClearOutput{}, nil
}

func (r *redisRepository) SetNotes(ctx context.Context, input SetNotesInput) (*SetNotesOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDEmpty)
	}

	if err := r.client.Set(ctx, notesKey(input.ProfileID), input.Notes, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to set notes")
	}

	return &SetNotesOutput{}, nil
}
