package gear

// Tier is the ordinal quality classification of a scored item,
// ordered worst to best. The UI renders these as Red/Yellow/Green/Blue.
type Tier string

// Quality tiers
const (
	TierReplace    Tier = "replace"
	TierViable     Tier = "viable"
	TierKeep       Tier = "keep"
	TierBestInSlot Tier = "best_in_slot"
)

// tierRanks defines the ordering used for comparisons
var tierRanks = map[Tier]int{
	TierReplace:    0,
	TierViable:     1,
	TierKeep:       2,
	TierBestInSlot: 3,
}

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is one of the four defined tiers
func (t Tier) IsValid() bool {
	_, ok := tierRanks[t]
	return ok
}

// Rank returns the ordinal position of the tier (0 = worst).
// Unknown tiers rank below TierReplace.
func (t Tier) Rank() int {
	if rank, ok := tierRanks[t]; ok {
		return rank
	}
	return -1
}

// Label returns the human-readable name shown to players
func (t Tier) Label() string {
	switch t {
	case TierBestInSlot:
		return "BiS (Best in Slot)"
	case TierKeep:
		return "Good (Keep & Improve)"
	case TierViable:
		return "Viable"
	case TierReplace:
		return "Replace"
	default:
		return "Unscored"
	}
}
