package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// KickCount is the number of placements tried for each rotation.
const KickCount = 5

// Turn directions, used as the second index of the kick tables.
const (
	turnCW = iota
	turnCCW
)

// Super Rotation System offsets for J, L, S, T, Z (and O, whose turns never
// need a kick), indexed by [from][direction]. y grows upward.
var jlstzKicks = [NumRotations][2][KickCount]core.Point{
	0: {
		turnCW:  {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}}, // 0 -> 1
		turnCCW: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},    // 0 -> 3
	},
	1: {
		turnCW:  {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}}, // 1 -> 2
		turnCCW: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 0, Y: 2}, {X: 1, Y: 2}}, // 1 -> 0
	},
	2: {
		turnCW:  {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: -2}, {X: 1, Y: -2}},    // 2 -> 3
		turnCCW: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -2}, {X: -1, Y: -2}}, // 2 -> 1
	},
	3: {
		turnCW:  {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}}, // 3 -> 0
		turnCCW: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 2}, {X: -1, Y: 2}}, // 3 -> 2
	},
}

// Offsets for the I piece, whose off-center pivot needs wider kicks.
var iKicks = [NumRotations][2][KickCount]core.Point{
	0: {
		turnCW:  {{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}}, // 0 -> 1
		turnCCW: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}}, // 0 -> 3
	},
	1: {
		turnCW:  {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 2}, {X: 2, Y: -1}}, // 1 -> 2
		turnCCW: {{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}}, // 1 -> 0
	},
	2: {
		turnCW:  {{X: 0, Y: 0}, {X: 2, Y: 0}, {X: -1, Y: 0}, {X: 2, Y: 1}, {X: -1, Y: -2}}, // 2 -> 3
		turnCCW: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}}, // 2 -> 1
	},
	3: {
		turnCW:  {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: -2}, {X: -2, Y: 1}}, // 3 -> 0
		turnCCW: {{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}, {X: -2, Y: -1}, {X: 1, Y: 2}}, // 3 -> 2
	},
}

// Kicks returns the ordered offsets to try when turning a piece of kind k
// from one rotation state to another. The first offset is always (0, 0).
// Transitions that are not a quarter turn only try the unkicked placement.
func Kicks(k Kind, from, to Rotation) [KickCount]core.Point {
	from %= NumRotations
	to %= NumRotations

	var dir int
	switch to {
	case from.CW():
		dir = turnCW
	case from.CCW():
		dir = turnCCW
	default:
		return [KickCount]core.Point{}
	}

	if k == I {
		return iKicks[from][dir]
	}
	return jlstzKicks[from][dir]
}
