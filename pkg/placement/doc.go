// Package placement resolves where a floating element (tooltip, popover,
// dropdown menu, select list) goes relative to its anchor.
//
// The policy is mirror then clamp: the preferred placement is used when it
// fits inside the boundary, otherwise its mirror across the primary axis
// (Top and Bottom, Left and Right) is tried, and when neither fits the
// preferred box is clamped into the boundary so it never renders off screen.
package placement
