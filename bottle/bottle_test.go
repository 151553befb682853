package bottle_test

import (
	"testing"

	"github.com/logdot/bottle-solver/bottle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPour_FullPoureeUnchanged checks that a full pouree never takes liquid,
// whatever the pourer holds.
func TestPour_FullPoureeUnchanged(t *testing.T) {
	pourers := []bottle.Bottle{
		bottle.Full(6, bottle.Red),
		bottle.Repeat(6, bottle.Red, 2),
		bottle.New(6, bottle.Blue, bottle.Red),
		bottle.New(6),
	}
	pouree := bottle.Full(6, bottle.Red)
	for _, pourer := range pourers {
		gotPourer, gotPouree := bottle.Pour(pourer, pouree)
		assert.Equal(t, pourer, gotPourer, "pourer %s", pourer)
		assert.Equal(t, pouree, gotPouree, "pouree for pourer %s", pourer)
	}
}

// TestPour_FrozenPourer verifies that a full, solved bottle is never poured.
func TestPour_FrozenPourer(t *testing.T) {
	pourer := bottle.Full(6, bottle.Red)

	// same-color full pouree
	p1, p2 := bottle.Pour(pourer, bottle.Full(6, bottle.Red))
	assert.Equal(t, bottle.Full(6, bottle.Red), p1)
	assert.Equal(t, bottle.Full(6, bottle.Red), p2)

	// empty pouree
	p1, p2 = bottle.Pour(pourer, bottle.New(6))
	assert.Equal(t, bottle.Full(6, bottle.Red), p1)
	assert.Equal(t, bottle.New(6), p2)

	// partially filled same-color pouree
	p1, p2 = bottle.Pour(pourer, bottle.Repeat(8, bottle.Red, 1))
	assert.Equal(t, bottle.Full(6, bottle.Red), p1)
	assert.Equal(t, bottle.Repeat(8, bottle.Red, 1), p2)
}

// TestPour_Transfers covers the compatible-transfer cases.
func TestPour_Transfers(t *testing.T) {
	cases := []struct {
		name       string
		pourer     bottle.Bottle
		pouree     bottle.Bottle
		wantPourer bottle.Bottle
		wantPouree bottle.Bottle
	}{
		{
			name:       "AllFiveIntoEmpty",
			pourer:     bottle.Repeat(6, bottle.Red, 5),
			pouree:     bottle.New(6),
			wantPourer: bottle.New(6),
			wantPouree: bottle.Repeat(6, bottle.Red, 5),
		},
		{
			name:       "ThreeIntoEmpty",
			pourer:     bottle.Repeat(6, bottle.Red, 3),
			pouree:     bottle.New(6),
			wantPourer: bottle.New(6),
			wantPouree: bottle.Repeat(6, bottle.Red, 3),
		},
		{
			name:       "OnlyTopRun",
			pourer:     bottle.New(6, bottle.Red, bottle.Red, bottle.Red, bottle.Blue, bottle.Blue, bottle.Blue),
			pouree:     bottle.New(6),
			wantPourer: bottle.Repeat(6, bottle.Red, 3),
			wantPouree: bottle.Repeat(6, bottle.Blue, 3),
		},
		{
			name:       "LimitedBySpace",
			pourer:     bottle.New(4, bottle.Green, bottle.Blue, bottle.Blue, bottle.Blue),
			pouree:     bottle.New(4, bottle.Red, bottle.Red, bottle.Blue),
			wantPourer: bottle.New(4, bottle.Green, bottle.Blue, bottle.Blue),
			wantPouree: bottle.New(4, bottle.Red, bottle.Red, bottle.Blue, bottle.Blue),
		},
		{
			name:       "OntoSolvedButNotFull",
			pourer:     bottle.New(4, bottle.Pink, bottle.Yellow),
			pouree:     bottle.Repeat(4, bottle.Yellow, 2),
			wantPourer: bottle.New(4, bottle.Pink),
			wantPouree: bottle.Repeat(4, bottle.Yellow, 3),
		},
		{
			name:       "DifferentCapacities",
			pourer:     bottle.Repeat(2, bottle.Grey, 2),
			pouree:     bottle.Repeat(6, bottle.Grey, 1),
			wantPourer: bottle.Full(2, bottle.Grey),
			wantPouree: bottle.Repeat(6, bottle.Grey, 1),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotPourer, gotPouree := bottle.Pour(tc.pourer, tc.pouree)
			assert.Equal(t, tc.wantPourer, gotPourer)
			assert.Equal(t, tc.wantPouree, gotPouree)
			// conservation of units
			assert.Equal(t, tc.pourer.Len()+tc.pouree.Len(), gotPourer.Len()+gotPouree.Len())
		})
	}
}

// TestPour_NoOps covers pours that move nothing.
func TestPour_NoOps(t *testing.T) {
	// empty pourer
	p1, p2 := bottle.Pour(bottle.New(4), bottle.Repeat(4, bottle.Red, 1))
	assert.Equal(t, bottle.New(4), p1)
	assert.Equal(t, bottle.Repeat(4, bottle.Red, 1), p2)
	assert.Zero(t, bottle.Transfer(bottle.New(4), bottle.New(4)))

	// color mismatch
	pourer := bottle.New(4, bottle.Red, bottle.Blue)
	pouree := bottle.New(4, bottle.Green)
	p1, p2 = bottle.Pour(pourer, pouree)
	assert.Equal(t, pourer, p1)
	assert.Equal(t, pouree, p2)
	assert.Zero(t, bottle.Transfer(pourer, pouree))
}

// TestPour_DoesNotAlias ensures results never share storage with inputs.
func TestPour_DoesNotAlias(t *testing.T) {
	pourer := bottle.New(4, bottle.Red, bottle.Blue, bottle.Blue)
	pouree := bottle.New(4, bottle.Blue)
	before := pourer.Contents()

	gotPourer, gotPouree := bottle.Pour(pourer, pouree)
	require.Equal(t, bottle.New(4, bottle.Red), gotPourer)
	require.Equal(t, bottle.New(4, bottle.Blue, bottle.Blue, bottle.Blue), gotPouree)

	// A second pour from the original pourer must see the original stack.
	assert.Equal(t, before, pourer.Contents())
	again, _ := bottle.Pour(pourer, bottle.New(4))
	assert.Equal(t, bottle.New(4, bottle.Red), again)

	// Mutating a Contents copy must not leak back.
	c := gotPouree.Contents()
	c[0] = bottle.Pink
	assert.Equal(t, []bottle.Color{bottle.Blue, bottle.Blue, bottle.Blue}, gotPouree.Contents())
}

// TestIsSolved verifies that only full, uniform bottles are solved.
func TestIsSolved(t *testing.T) {
	full := bottle.New(4, bottle.Red, bottle.Red, bottle.Red, bottle.Red)
	half := bottle.Repeat(4, bottle.Red, 3)
	mixed := bottle.New(4, bottle.Red, bottle.Blue, bottle.Red, bottle.Blue)
	empty := bottle.New(4)

	assert.True(t, full.IsSolved())
	assert.False(t, half.IsSolved())
	assert.False(t, mixed.IsSolved())
	assert.False(t, empty.IsSolved())

	assert.True(t, half.IsUniform())
	assert.False(t, mixed.IsUniform())
	assert.True(t, empty.IsEmpty())
	assert.True(t, full.IsFull())
	assert.Equal(t, 1, half.Free())
}

// TestCompare checks the total order used for canonical sorting.
func TestCompare(t *testing.T) {
	ordered := []bottle.Bottle{
		bottle.New(4),
		bottle.New(6),
		bottle.New(4, bottle.Red),
		bottle.New(4, bottle.Blue, bottle.Red),
		bottle.New(4, bottle.Green, bottle.Green, bottle.Red),
		bottle.New(4, bottle.Blue, bottle.Blue, bottle.Red),
		bottle.New(6, bottle.Red),
		bottle.New(4, bottle.Green),
		bottle.Full(4, bottle.Blue),
	}
	for i := range ordered {
		assert.Zero(t, ordered[i].Compare(ordered[i]), "reflexive at %d", i)
		for j := i + 1; j < len(ordered); j++ {
			assert.Equal(t, -1, ordered[i].Compare(ordered[j]), "%s < %s", ordered[i], ordered[j])
			assert.Equal(t, 1, ordered[j].Compare(ordered[i]), "%s > %s", ordered[j], ordered[i])
			assert.False(t, ordered[i].Equal(ordered[j]))
		}
	}
}

// TestValidate covers each invariant violation.
func TestValidate(t *testing.T) {
	assert.NoError(t, bottle.New(4, bottle.Red).Validate())
	assert.NoError(t, bottle.New(1).Validate())
	assert.ErrorIs(t, bottle.New(0).Validate(), bottle.ErrBadCapacity)
	assert.ErrorIs(t, bottle.New(-2).Validate(), bottle.ErrBadCapacity)
	assert.ErrorIs(t, bottle.New(1, bottle.Red, bottle.Red).Validate(), bottle.ErrOverfilled)
	assert.ErrorIs(t, bottle.New(2, bottle.Color(200)).Validate(), bottle.ErrUnknownColor)
}

// TestColors covers naming and parsing of the palette.
func TestColors(t *testing.T) {
	for _, c := range bottle.Palette() {
		got, err := bottle.ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := bottle.ParseColor("  lorange ")
	require.NoError(t, err)
	assert.Equal(t, bottle.LOrange, got)

	_, err = bottle.ParseColor("magenta")
	assert.ErrorIs(t, err, bottle.ErrUnknownColor)

	assert.Len(t, bottle.Palette(), 11)
	assert.Equal(t, "Color(42)", bottle.Color(42).String())
	assert.False(t, bottle.Color(42).Valid())
}

// TestString checks the rendering used by the CLI.
func TestString(t *testing.T) {
	assert.Equal(t, "[Red Blue _ _]", bottle.New(4, bottle.Red, bottle.Blue).String())
	assert.Equal(t, "[_ _]", bottle.New(2).String())
	assert.Equal(t, "[Pink]", bottle.Full(1, bottle.Pink).String())
}
