// Package overlay owns the trigger state machine shared by floating
// components.
//
// Hosts forward pointer, click and focus events to Handle. Debounced
// transitions come back as bubbletea commands producing TimerMsg values,
// which must be routed to Update. A newer event always supersedes a pending
// timer, so stale transitions are never applied.
package overlay
