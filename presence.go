package objema

// Presence is the bit flag recorded per field during construction. A zero
// value means the field was absent from the input and no default applied,
// which is only legal for optional fields.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was an explicit null.
	PresenceDefaultApplied                      // Declared default was applied.
)

// PresenceMap maps field names to Presence flags.
type PresenceMap map[string]Presence
