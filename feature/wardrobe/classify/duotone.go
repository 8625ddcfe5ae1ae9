package classify

import "wardrobe-manager/feature/wardrobe/models"

// Color slot markers on parts.
const (
	PrimarySlot   = 1
	SecondarySlot = 2
)

// HasTwoColorSlots reports whether parts use both the first and second color slot.
func HasTwoColorSlots(parts []models.Part) bool {
	var first, second bool
	for _, p := range parts {
		switch p.ColorIndex {
		case PrimarySlot:
			first = true
		case SecondarySlot:
			second = true
		}
	}
	return first && second
}

// IsDuotone reports whether an item of category code renders with two colors.
// Shirts always do.
func IsDuotone(code string, parts []models.Part) bool {
	if code == models.ShirtCategory {
		return true
	}
	return HasTwoColorSlots(parts)
}
