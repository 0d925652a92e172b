package components

import (
	"strings"

	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/overlay"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
	"github.com/alexisbeaulieu97/antui/pkg/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Option is one choice of a Select.
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// Select is a single-value picker. The selector box is the anchor; the option
// list opens below it on click. The value may be controlled by the caller.
type Select struct {
	Floating
	options     []Option
	value       *state.Value[string]
	search      textinput.Model
	showSearch  bool
	filtered    []int
	active      int
	placeholder string
	slots       Slots
}

// NewSelect creates an uncontrolled, searchable select with no value.
func NewSelect(options ...Option) *Select {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "Search"

	s := &Select{
		Floating:    newFloating(overlay.TriggerClick, placement.BottomLeft, false),
		options:     options,
		value:       state.NewValue("", nil),
		search:      search,
		showSearch:  true,
		placeholder: "Select",
	}
	s.refilter()
	return s
}

// WithDefaultValue sets the initial value of an uncontrolled select.
func (s *Select) WithDefaultValue(value string) *Select {
	s.value.Reset(value)
	s.refilter()
	return s
}

// WithValue makes the select controlled: it always shows value, and user
// choices only reach OnChange until the caller passes a new value.
func (s *Select) WithValue(value string) *Select {
	s.value.Control(value)
	return s
}

// OnChange registers the callback for user choices.
func (s *Select) OnChange(fn func(string)) *Select {
	s.value.OnChange(fn)
	return s
}

// WithPlaceholder sets the text shown when nothing is selected.
func (s *Select) WithPlaceholder(placeholder string) *Select {
	s.placeholder = placeholder
	return s
}

// WithSearch toggles type-to-filter.
func (s *Select) WithSearch(enabled bool) *Select {
	s.showSearch = enabled
	return s
}

// WithPlacement sets the preferred placement of the option list.
func (s *Select) WithPlacement(p placement.Placement) *Select {
	s.setPlacement(p)
	return s
}

// WithSlots overrides slot styles.
func (s *Select) WithSlots(slots Slots) *Select {
	s.slots = slots
	return s
}

// Value returns the current value.
func (s *Select) Value() string {
	return s.value.Get()
}

// Selected returns the option matching the current value.
func (s *Select) Selected() (Option, bool) {
	value := s.value.Get()
	for _, opt := range s.options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Query returns the search text.
func (s *Select) Query() string {
	return s.search.Value()
}

// Filter replaces the search text and re-filters the options.
func (s *Select) Filter(query string) {
	s.search.SetValue(query)
	s.refilter()
}

// Filtered returns the options matching the search text, best match first.
func (s *Select) Filtered() []Option {
	out := make([]Option, len(s.filtered))
	for i, idx := range s.filtered {
		out[i] = s.options[idx]
	}
	return out
}

// Active returns the highlighted position within Filtered, or -1.
func (s *Select) Active() int {
	return s.active
}

func (s *Select) refilter() {
	query := strings.TrimSpace(s.search.Value())
	s.filtered = s.filtered[:0]
	if query == "" {
		for i := range s.options {
			s.filtered = append(s.filtered, i)
		}
	} else {
		labels := make([]string, len(s.options))
		for i, opt := range s.options {
			labels[i] = opt.Label
		}
		for _, match := range fuzzy.Find(query, labels) {
			s.filtered = append(s.filtered, match.Index)
		}
	}
	s.active = s.firstActive()
}

// firstActive highlights the selected option when it is listed, otherwise
// the first enabled one.
func (s *Select) firstActive() int {
	value := s.value.Get()
	for pos, idx := range s.filtered {
		if s.options[idx].Value == value && !s.options[idx].Disabled {
			return pos
		}
	}
	return s.step(-1, 1)
}

func (s *Select) step(from, dir int) int {
	n := len(s.filtered)
	if n == 0 {
		return -1
	}
	pos := from
	for range n {
		pos = ((pos+dir)%n + n) % n
		if !s.options[s.filtered[pos]].Disabled {
			return pos
		}
	}
	return -1
}

// Toggle opens or closes the option list as a click on the selector does.
func (s *Select) Toggle() tea.Cmd {
	return s.around(func() tea.Cmd { return s.machine.Handle(overlay.EventClick) })
}

// Choose selects the option at position pos of Filtered and closes the list.
func (s *Select) Choose(pos int) tea.Cmd {
	if pos < 0 || pos >= len(s.filtered) {
		return nil
	}
	opt := s.options[s.filtered[pos]]
	if opt.Disabled {
		return nil
	}
	s.value.Set(opt.Value)
	return s.around(s.machine.Close)
}

// around runs a state change and resets the search when the list opens or
// closes because of it.
func (s *Select) around(fn func() tea.Cmd) tea.Cmd {
	was := s.Visible()
	cmd := fn()
	if now := s.Visible(); now != was {
		s.search.SetValue("")
		s.refilter()
		if now && s.showSearch {
			return tea.Batch(cmd, s.search.Focus())
		}
		s.search.Blur()
	}
	return cmd
}

// Update handles overlay timers and keys. While closed, enter, space and down
// open the list. While open, arrows move, enter chooses, esc closes and any
// other key edits the search.
func (s *Select) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.machine.Update(msg)
	}

	if !s.Visible() {
		switch key.String() {
		case "enter", " ", "down":
			return s.Toggle()
		}
		return nil
	}

	switch key.String() {
	case "up", "ctrl+p":
		s.active = s.step(s.active, -1)
	case "down", "ctrl+n", "tab":
		s.active = s.step(s.active, 1)
	case "enter":
		return s.Choose(s.active)
	case "esc":
		return s.around(s.machine.Close)
	default:
		if !s.showSearch {
			return nil
		}
		before := s.search.Value()
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		if s.search.Value() != before {
			s.refilter()
		}
		return cmd
	}
	return nil
}

func (s *Select) resolvedSlots(theme Theme) Slots {
	p := theme.Palette
	border := p.Border.Base
	if s.Visible() {
		border = p.Primary.Base
	}
	return Slots{
		SlotRoot:       lipgloss.NewStyle().Border(theme.Borders.Rounded).BorderForeground(border).Padding(0, 1),
		SlotBody:       lipgloss.NewStyle().Foreground(p.Text.Base),
		SlotEmpty:      lipgloss.NewStyle().Foreground(p.Text.Muted),
		SlotItem:       lipgloss.NewStyle().Foreground(p.Text.Base).Padding(0, 1),
		SlotActiveItem: lipgloss.NewStyle().Background(p.Primary.Muted).Foreground(p.Primary.Base).Bold(true).Padding(0, 1),
		SlotArrow:      lipgloss.NewStyle().Foreground(p.Text.Muted),
	}.Merge(s.slots)
}

func (s *Select) labelWidth() int {
	width := lipgloss.Width(s.placeholder)
	for _, opt := range s.options {
		width = max(width, lipgloss.Width(opt.Label))
	}
	return width
}

// View renders the selector box.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the selector box showing the search text while
// searching, the selected label, or the placeholder.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	slots := s.resolvedSlots(ctx.Theme)
	width := s.labelWidth()

	var text string
	switch opt, ok := s.Selected(); {
	case s.Visible() && s.showSearch && s.search.Value() != "":
		text = slots.Style(SlotBody).Render(s.search.Value())
	case ok:
		text = slots.Style(SlotBody).Render(opt.Label)
	default:
		text = slots.Style(SlotEmpty).Render(s.placeholder)
	}
	text += strings.Repeat(" ", max(width-lipgloss.Width(text), 0))

	caret := "▾"
	if s.Visible() {
		caret = "▴"
	}
	return slots.Style(SlotRoot).Render(text + " " + slots.Style(SlotArrow).Render(caret))
}

// PopupView renders the option list.
func (s *Select) PopupView(ctx RenderContext) string {
	slots := s.resolvedSlots(ctx.Theme)
	slots[SlotRoot] = lipgloss.NewStyle().Border(ctx.Theme.Borders.Rounded).BorderForeground(ctx.Theme.Palette.Border.Base)
	if custom, ok := s.slots[SlotRoot]; ok {
		slots[SlotRoot] = custom
	}

	labels := make([]string, len(s.filtered))
	for pos, idx := range s.filtered {
		labels[pos] = s.options[idx].Label
	}
	return renderMenu(slots, labels, s.active, func(pos int) bool { return s.options[s.filtered[pos]].Disabled }, "No data")
}

// Compose draws the option list over background below anchor, which is
// normally where the selector box was drawn.
func (s *Select) Compose(background string, anchor, viewport geom.Rect) string {
	return s.ComposeWithContext(DefaultContext().withViewport(viewport), background, anchor)
}

// ComposeWithContext draws the option list using ctx.Viewport as the boundary.
func (s *Select) ComposeWithContext(ctx RenderContext, background string, anchor geom.Rect) string {
	if !s.Visible() {
		return background
	}
	return s.compose(background, anchor, ctx.Viewport, s.PopupView(ctx), lipgloss.NewStyle())
}
