package components

import "github.com/charmbracelet/lipgloss"

// Slot names a styleable part of a composite component.
type Slot int

const (
	SlotRoot Slot = iota
	SlotTitle
	SlotBody
	SlotArrow
	SlotItem
	SlotActiveItem
	SlotEmpty
)

var slotNames = [...]string{"root", "title", "body", "arrow", "item", "activeItem", "empty"}

func (s Slot) String() string {
	if s < 0 || int(s) >= len(slotNames) {
		return "slot"
	}
	return slotNames[s]
}

// Slots maps parts of a component to styles. It is flat: a slot never
// inherits from another slot, and an override replaces the whole style.
type Slots map[Slot]lipgloss.Style

// Style returns the style for slot, or an empty style when unset.
func (s Slots) Style(slot Slot) lipgloss.Style {
	if style, ok := s[slot]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Merge returns a new map with overrides layered over s.
func (s Slots) Merge(overrides Slots) Slots {
	merged := make(Slots, len(s)+len(overrides))
	for slot, style := range s {
		merged[slot] = style
	}
	for slot, style := range overrides {
		merged[slot] = style
	}
	return merged
}
