package bottle

import "errors"

// Sentinel errors for bottle validation.
var (
	// ErrBadCapacity is returned when a bottle's capacity is zero or negative.
	ErrBadCapacity = errors.New("bottle: capacity must be positive")

	// ErrOverfilled is returned when a bottle holds more units than it can.
	ErrOverfilled = errors.New("bottle: contents exceed capacity")

	// ErrUnknownColor is returned for colors outside the palette.
	ErrUnknownColor = errors.New("bottle: unknown color")
)

// Bottle is an immutable, fixed-capacity stack of colors.
//
// contents[0] is the bottom unit and contents[len-1] the top one.
// An empty bottle always stores a nil slice, so structurally equal bottles
// are also reflect.DeepEqual.
type Bottle struct {
	contents []Color
	capacity int
}
