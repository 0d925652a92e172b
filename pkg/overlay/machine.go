package overlay

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
	"github.com/alexisbeaulieu97/antui/pkg/state"
)

// DefaultHoverDelay is the leave debounce used by hover triggers. It lets the
// pointer cross the gap between anchor and content without a close.
const DefaultHoverDelay = 100 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// State is the visibility state of an overlay.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Trigger selects which events open and close an overlay.
type Trigger int

const (
	TriggerHover Trigger = iota
	TriggerClick
	TriggerFocus
	TriggerContextMenu
)

func (t Trigger) String() string {
	switch t {
	case TriggerHover:
		return "hover"
	case TriggerClick:
		return "click"
	case TriggerFocus:
		return "focus"
	case TriggerContextMenu:
		return "contextMenu"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// Event is an input forwarded by the host toolkit.
type Event int

const (
	EventPointerEnter Event = iota
	EventPointerLeave
	EventClick
	EventContextMenu
	EventFocus
	EventBlur
	// EventOpen and EventClose are explicit requests honoured by every trigger.
	EventOpen
	EventClose
)

// Config describes how an overlay reacts to events.
type Config struct {
	Trigger    Trigger
	EnterDelay time.Duration
	LeaveDelay time.Duration
}

// DefaultConfig returns the delays conventionally used with a trigger: hover
// overlays open at once and debounce the exit, the others react immediately.
// Set EnterDelay to debounce hover entry as well.
func DefaultConfig(trigger Trigger) Config {
	cfg := Config{Trigger: trigger}
	if trigger == TriggerHover {
		cfg.LeaveDelay = DefaultHoverDelay
	}
	return cfg
}

// TimerMsg is delivered when a debounced transition is due. Messages from
// superseded timers carry an old sequence number and are ignored.
type TimerMsg struct {
	ID     int
	Seq    int
	Target State
}

type memo struct {
	anchor  geom.Rect
	content geom.Size
	req     placement.Request
	result  placement.Result
}

// Machine drives Closed -> Opening -> Open -> Closing -> Closed for one
// overlay and memoizes its placement between transitions.
type Machine struct {
	id    int
	cfg   Config
	state State
	seq   int
	open  *state.Value[bool]
	memo  *memo
}

// New creates a closed machine.
func New(cfg Config) *Machine {
	return &Machine{
		id:   nextID(),
		cfg:  cfg,
		open: state.NewValue(false, nil),
	}
}

// ID identifies the machine's timer messages.
func (m *Machine) ID() int { return m.id }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Config returns the machine configuration.
func (m *Machine) Config() Config { return m.cfg }

// Reconfigure swaps the configuration in place. The open cell, its
// callback and the machine ID survive; a pending transition is cancelled
// and the state settles on the committed visibility.
func (m *Machine) Reconfigure(cfg Config) {
	m.cfg = cfg
	m.seq++
	m.sync()
}

// Visible reports whether the overlay should be drawn.
func (m *Machine) Visible() bool {
	return m.state == Open || m.state == Closing
}

// OnOpenChange registers a callback for committed or requested visibility
// changes.
func (m *Machine) OnOpenChange(fn func(open bool)) {
	m.open.OnChange(fn)
}

// Controlled pins visibility to open. Events then only request changes
// through OnOpenChange; the caller applies them by calling Controlled again.
func (m *Machine) Controlled(open bool) {
	m.open.Control(open)
	m.seq++
	m.sync()
}

// Uncontrolled hands visibility back to the machine.
func (m *Machine) Uncontrolled() {
	m.open.Release()
	m.seq++
	m.sync()
}

// IsControlled reports whether the caller owns visibility.
func (m *Machine) IsControlled() bool {
	return m.open.Controlled()
}

// Handle applies an event and returns a command when a debounced transition
// was scheduled. Relevant events cancel any pending transition.
func (m *Machine) Handle(ev Event) tea.Cmd {
	wantOpen, relevant := m.interpret(ev)
	if !relevant {
		return nil
	}
	m.seq++
	if wantOpen {
		return m.requestOpen()
	}
	return m.requestClose()
}

// Open is shorthand for Handle(EventOpen).
func (m *Machine) Open() tea.Cmd { return m.Handle(EventOpen) }

// Close is shorthand for Handle(EventClose).
func (m *Machine) Close() tea.Cmd { return m.Handle(EventClose) }

// Update consumes the machine's own TimerMsg values and ignores the rest.
func (m *Machine) Update(msg tea.Msg) tea.Cmd {
	timer, ok := msg.(TimerMsg)
	if !ok || timer.ID != m.id || timer.Seq != m.seq {
		return nil
	}
	switch {
	case timer.Target == Open && m.state == Opening:
		m.commit(true)
	case timer.Target == Closed && m.state == Closing:
		m.commit(false)
	}
	return nil
}

// Placement returns the memoized result for identical inputs and recomputes
// otherwise. Every state transition drops the memo.
func (m *Machine) Placement(anchor geom.Rect, content geom.Size, req placement.Request) placement.Result {
	if m.memo != nil && m.memo.anchor == anchor && m.memo.content == content && m.memo.req == req {
		return m.memo.result
	}
	result := placement.Resolve(anchor, content, req)
	m.memo = &memo{anchor: anchor, content: content, req: req, result: result}
	return result
}

// Memoized reports whether a placement is currently cached.
func (m *Machine) Memoized() bool {
	return m.memo != nil
}

func (m *Machine) interpret(ev Event) (wantOpen, relevant bool) {
	switch ev {
	case EventOpen:
		return true, true
	case EventClose:
		return false, true
	}

	switch m.cfg.Trigger {
	case TriggerHover:
		switch ev {
		case EventPointerEnter:
			return true, true
		case EventPointerLeave:
			return false, true
		}
	case TriggerClick:
		if ev == EventClick {
			return !m.opening(), true
		}
	case TriggerFocus:
		switch ev {
		case EventFocus:
			return true, true
		case EventBlur:
			return false, true
		}
	case TriggerContextMenu:
		switch ev {
		case EventContextMenu:
			return true, true
		case EventClick:
			if m.opening() {
				return false, true
			}
		}
	}
	return false, false
}

// opening reports whether the machine is open or heading there.
func (m *Machine) opening() bool {
	return m.state == Opening || m.state == Open
}

func (m *Machine) requestOpen() tea.Cmd {
	switch m.state {
	case Open:
		return nil
	case Closing:
		m.transition(Open)
		return nil
	}

	m.transition(Opening)
	if m.cfg.EnterDelay > 0 {
		return m.schedule(m.cfg.EnterDelay, Open)
	}
	m.commit(true)
	return nil
}

func (m *Machine) requestClose() tea.Cmd {
	switch m.state {
	case Closed:
		return nil
	case Opening:
		m.transition(Closed)
		return nil
	}

	m.transition(Closing)
	if m.cfg.Trigger == TriggerHover && m.cfg.LeaveDelay > 0 {
		return m.schedule(m.cfg.LeaveDelay, Closed)
	}
	m.commit(false)
	return nil
}

func (m *Machine) commit(open bool) {
	if open {
		m.transition(Open)
	} else {
		m.transition(Closed)
	}
	m.open.Set(open)
	if m.open.Controlled() {
		m.sync()
	}
}

func (m *Machine) sync() {
	if m.open.Get() {
		m.transition(Open)
	} else {
		m.transition(Closed)
	}
}

func (m *Machine) transition(next State) {
	m.state = next
	m.memo = nil
}

func (m *Machine) schedule(delay time.Duration, target State) tea.Cmd {
	id, seq := m.id, m.seq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TimerMsg{ID: id, Seq: seq, Target: target}
	})
}
