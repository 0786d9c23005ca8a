package arrange

import (
	"fmt"
	"strings"
)

// Mode is a named arrangement of the card set.
type Mode uint8

// Arrangement modes. The zero value is free positioning.
const (
	ModeFree Mode = iota
	ModeStack
	ModeSplit
	ModeFocus
	ModeGrid
)

var modeNames = [...]string{
	ModeFree:  "free",
	ModeStack: "stack",
	ModeSplit: "split",
	ModeFocus: "focus",
	ModeGrid:  "grid",
}

// Cycle is the order followed by [Mode.Next].
var Cycle = []Mode{ModeStack, ModeSplit, ModeFocus, ModeGrid}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode maps a mode name to a Mode. Matching ignores case.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return ModeFree, fmt.Errorf("unknown arrangement mode %q", s)
}

// Next returns the mode after m in the cycle stack, split, focus, grid.
// Free positioning enters the cycle at stack.
func (m Mode) Next() Mode {
	for i, c := range Cycle {
		if c == m {
			return Cycle[(i+1)%len(Cycle)]
		}
	}
	return ModeStack
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return int(m) < len(modeNames) }

// Managed reports whether the mode owns card placement.
func (m Mode) Managed() bool { return m != ModeFree }

// RequiresFocus reports whether the mode needs exactly one focused card.
// Free and grid show every card as an equal and tolerate no focus.
func (m Mode) RequiresFocus() bool {
	return m == ModeStack || m == ModeSplit || m == ModeFocus
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
