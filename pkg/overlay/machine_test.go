package overlay

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/antui/pkg/geom"
	"github.com/alexisbeaulieu97/antui/pkg/placement"
)

func hoverMachine() *Machine {
	return New(Config{Trigger: TriggerHover, EnterDelay: time.Millisecond, LeaveDelay: time.Millisecond})
}

func fire(t *testing.T, cmd tea.Cmd) TimerMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(TimerMsg)
	require.True(t, ok)
	return msg
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	hover := DefaultConfig(TriggerHover)
	assert.Zero(t, hover.EnterDelay)
	assert.Equal(t, DefaultHoverDelay, hover.LeaveDelay)

	click := DefaultConfig(TriggerClick)
	assert.Zero(t, click.EnterDelay)
	assert.Zero(t, click.LeaveDelay)
}

func TestHoverOpensAfterDelay(t *testing.T) {
	t.Parallel()

	m := hoverMachine()
	cmd := m.Handle(EventPointerEnter)
	assert.Equal(t, Opening, m.State())
	assert.False(t, m.Visible())

	m.Update(fire(t, cmd))
	assert.Equal(t, Open, m.State())
	assert.True(t, m.Visible())
}

func TestHoverLeaveIsDebounced(t *testing.T) {
	t.Parallel()

	m := hoverMachine()
	m.Update(fire(t, m.Handle(EventPointerEnter)))

	leave := m.Handle(EventPointerLeave)
	assert.Equal(t, Closing, m.State())
	assert.True(t, m.Visible(), "closing overlays stay on screen until the delay elapses")

	m.Update(fire(t, leave))
	assert.Equal(t, Closed, m.State())
}

func TestReEnterCancelsPendingClose(t *testing.T) {
	t.Parallel()

	m := hoverMachine()
	m.Update(fire(t, m.Handle(EventPointerEnter)))

	stale := fire(t, m.Handle(EventPointerLeave))
	assert.Nil(t, m.Handle(EventPointerEnter))
	assert.Equal(t, Open, m.State())

	m.Update(stale)
	assert.Equal(t, Open, m.State(), "stale timer must not close the overlay")
}

func TestLeaveCancelsPendingOpen(t *testing.T) {
	t.Parallel()

	m := hoverMachine()
	stale := fire(t, m.Handle(EventPointerEnter))
	assert.Nil(t, m.Handle(EventPointerLeave))
	assert.Equal(t, Closed, m.State())

	m.Update(stale)
	assert.Equal(t, Closed, m.State())
}

func TestTimerForOtherMachineIsIgnored(t *testing.T) {
	t.Parallel()

	a, b := hoverMachine(), hoverMachine()
	msg := fire(t, a.Handle(EventPointerEnter))
	b.Handle(EventPointerEnter)

	b.Update(msg)
	assert.Equal(t, Opening, b.State())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestZeroDelaysOpenImmediately(t *testing.T) {
	t.Parallel()

	m := New(Config{Trigger: TriggerHover})
	assert.Nil(t, m.Handle(EventPointerEnter))
	assert.Equal(t, Open, m.State())
	assert.Nil(t, m.Handle(EventPointerLeave))
	assert.Equal(t, Closed, m.State())
}

func TestDefaultHoverOpensAtOnceAndDebouncesExit(t *testing.T) {
	t.Parallel()

	m := New(DefaultConfig(TriggerHover))
	assert.Nil(t, m.Handle(EventPointerEnter))
	assert.Equal(t, Open, m.State())

	leave := m.Handle(EventPointerLeave)
	assert.Equal(t, Closing, m.State())
	assert.True(t, m.Visible())

	m.Update(fire(t, leave))
	assert.Equal(t, Closed, m.State())
}

func TestClickToggles(t *testing.T) {
	t.Parallel()

	m := New(DefaultConfig(TriggerClick))
	assert.Nil(t, m.Handle(EventClick))
	assert.Equal(t, Open, m.State())

	assert.Nil(t, m.Handle(EventPointerLeave), "hover events do not affect click overlays")
	assert.Equal(t, Open, m.State())

	m.Handle(EventClick)
	assert.Equal(t, Closed, m.State())
}

func TestFocusTrigger(t *testing.T) {
	t.Parallel()

	m := New(DefaultConfig(TriggerFocus))
	m.Handle(EventClick)
	assert.Equal(t, Closed, m.State())

	m.Handle(EventFocus)
	assert.Equal(t, Open, m.State())
	m.Handle(EventBlur)
	assert.Equal(t, Closed, m.State())
}

func TestContextMenuTrigger(t *testing.T) {
	t.Parallel()

	m := New(DefaultConfig(TriggerContextMenu))
	m.Handle(EventClick)
	assert.Equal(t, Closed, m.State())

	m.Handle(EventContextMenu)
	assert.Equal(t, Open, m.State())
	m.Handle(EventClick)
	assert.Equal(t, Closed, m.State())
}

func TestReconfigureKeepsOpenCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		controlled bool
		setup      func(m *Machine)
		wantState  State
	}{
		{name: "controlled open", controlled: true, setup: func(m *Machine) { m.Controlled(true) }, wantState: Open},
		{name: "uncontrolled open", setup: func(m *Machine) { m.Handle(EventPointerEnter) }, wantState: Open},
		{name: "pending close settles open", setup: func(m *Machine) {
			m.Handle(EventPointerEnter)
			m.Handle(EventPointerLeave)
		}, wantState: Open},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var requests []bool
			m := New(DefaultConfig(TriggerHover))
			m.OnOpenChange(func(open bool) { requests = append(requests, open) })
			id := m.ID()
			tt.setup(m)
			requests = nil

			m.Reconfigure(DefaultConfig(TriggerClick))
			assert.Equal(t, TriggerClick, m.Config().Trigger)
			assert.Equal(t, id, m.ID())
			assert.Equal(t, tt.wantState, m.State())
			assert.Equal(t, tt.controlled, m.IsControlled())

			m.Handle(EventClick)
			assert.Equal(t, []bool{false}, requests, "callback survives reconfiguration")
		})
	}
}

func TestReconfigureDropsStaleTimers(t *testing.T) {
	t.Parallel()

	m := New(DefaultConfig(TriggerHover))
	m.Handle(EventPointerEnter)
	cmd := m.Handle(EventPointerLeave)
	require.NotNil(t, cmd)

	m.Reconfigure(DefaultConfig(TriggerClick))
	m.Update(cmd())
	assert.Equal(t, Open, m.State())
}

func TestExplicitOpenClose(t *testing.T) {
	t.Parallel()

	m := New(DefaultConfig(TriggerFocus))
	m.Open()
	assert.Equal(t, Open, m.State())
	m.Close()
	assert.Equal(t, Closed, m.State())
}

func TestControlledVisibility(t *testing.T) {
	t.Parallel()

	var requests []bool
	m := New(DefaultConfig(TriggerClick))
	m.OnOpenChange(func(open bool) { requests = append(requests, open) })
	m.Controlled(false)
	require.True(t, m.IsControlled())

	m.Handle(EventClick)
	assert.Equal(t, Closed, m.State(), "controlled overlays wait for the caller")
	assert.Equal(t, []bool{true}, requests)

	m.Controlled(true)
	assert.Equal(t, Open, m.State())

	m.Handle(EventClick)
	assert.Equal(t, Open, m.State())
	assert.Equal(t, []bool{true, false}, requests)

	m.Uncontrolled()
	assert.False(t, m.IsControlled())
	assert.Equal(t, Closed, m.State())
}

func TestUncontrolledNotifiesCommittedChanges(t *testing.T) {
	t.Parallel()

	var changes []bool
	m := New(DefaultConfig(TriggerClick))
	m.OnOpenChange(func(open bool) { changes = append(changes, open) })

	m.Handle(EventClick)
	m.Handle(EventClick)
	assert.Equal(t, []bool{true, false}, changes)
}

func TestPlacementMemoInvalidatedOnTransition(t *testing.T) {
	t.Parallel()

	m := New(DefaultConfig(TriggerClick))
	anchor := geom.NewRect(10, 10, 4, 1)
	content := geom.Size{Width: 10, Height: 3}
	req := placement.Request{Preferred: placement.Bottom, Boundary: geom.NewRect(0, 0, 80, 24)}

	m.Handle(EventClick)
	first := m.Placement(anchor, content, req)
	assert.True(t, m.Memoized())
	assert.Equal(t, first, m.Placement(anchor, content, req))

	m.Handle(EventClick)
	assert.False(t, m.Memoized())

	m.Handle(EventClick)
	moved := m.Placement(anchor.Translate(0, 12), content, req)
	assert.Equal(t, placement.Top, moved.Placement)
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "closing", Closing.String())
	assert.Equal(t, "contextMenu", TriggerContextMenu.String())
}
