package level_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/logdot/bottle-solver/bottle"
	"github.com/logdot/bottle-solver/game"
	"github.com/logdot/bottle-solver/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := `
name: mixed
capacity: 4
bottles:
  - [Red, blue, BLUE]
  - {capacity: 6, contents: [green]}
  - []
`
	l, err := level.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "mixed", l.Name)
	require.Len(t, l.Bottles, 3)
	assert.Equal(t, 6, l.Bottles[1].Capacity)

	g, err := l.Game()
	require.NoError(t, err)
	want := game.New(
		bottle.New(4, bottle.Red, bottle.Blue, bottle.Blue),
		bottle.New(6, bottle.Green),
		bottle.New(4),
	)
	assert.True(t, want.Equal(g), "got\n%s", g)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty", "", nil},
		{"UnknownColor", "capacity: 2\nbottles:\n  - [red, teal]\n", bottle.ErrUnknownColor},
		{"Overfilled", "capacity: 2\nbottles:\n  - [red, red, red]\n", bottle.ErrOverfilled},
		{"NoCapacity", "bottles:\n  - [red]\n", bottle.ErrBadCapacity},
		{"NoBottles", "name: x\ncapacity: 4\n", game.ErrInvalidGame},
		{"UnknownField", "capacity: 4\nbottels:\n  - []\n", nil},
		{"UnknownBottleField", "capacity: 2\nbottles:\n  - {capacity: 2, contnts: [red, red]}\n  - [blue, blue]\n", nil},
		{"ScalarBottle", "capacity: 4\nbottles:\n  - red\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := level.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, level.ErrInvalidLevel)
			if tc.name == "UnknownBottleField" {
				assert.Contains(t, err.Error(), `line 3: unknown bottle field "contnts"`)
			}
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"sortpuz-119", "starter", "two-move"}, level.Builtins())

	for _, name := range level.Builtins() {
		t.Run(name, func(t *testing.T) {
			l, err := level.Builtin(name)
			require.NoError(t, err)
			assert.Equal(t, name, l.Name)
			g, err := l.Game()
			require.NoError(t, err)
			assert.False(t, g.IsSolved())

			// encode and decode again
			var buf bytes.Buffer
			require.NoError(t, level.Encode(&buf, level.FromGame(name, g)))
			back, err := level.Parse(buf.Bytes())
			require.NoError(t, err, buf.String())
			g2, err := back.Game()
			require.NoError(t, err)
			assert.True(t, g.Equal(g2))
		})
	}

	sortpuz, err := level.Builtin("sortpuz-119")
	require.NoError(t, err)
	g, err := sortpuz.Game()
	require.NoError(t, err)
	assert.Len(t, g, 10)

	_, err = level.Builtin("nope")
	assert.ErrorIs(t, err, level.ErrUnknownLevel)
	_, err = level.Builtin("../levels/starter")
	assert.ErrorIs(t, err, level.ErrUnknownLevel)
}

func TestFromGame_MixedCapacity(t *testing.T) {
	g := game.New(
		bottle.New(4, bottle.DGreen, bottle.LOrange),
		bottle.New(2),
	)
	l := level.FromGame("mix", g)
	assert.Equal(t, 4, l.Capacity)
	assert.Equal(t, []string{"dgreen", "lorange"}, l.Bottles[0].Contents)
	assert.Zero(t, l.Bottles[0].Capacity)
	assert.Equal(t, 2, l.Bottles[1].Capacity)

	var buf bytes.Buffer
	require.NoError(t, level.Encode(&buf, l))
	assert.Contains(t, buf.String(), "[dgreen, lorange]")

	back, err := level.Parse(buf.Bytes())
	require.NoError(t, err, buf.String())
	g2, err := back.Game()
	require.NoError(t, err)
	assert.True(t, g.Equal(g2))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: 2\nbottles:\n  - [red, blue]\n  - [blue]\n  - []\n"), 0o644))

	l, err := level.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny", l.Name)
	assert.Len(t, l.Bottles, 3)

	_, err = level.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("capacity: 2\nbottles:\n  - [mauve]\n"), 0o644))
	_, err = level.LoadFile(bad)
	assert.ErrorIs(t, err, level.ErrInvalidLevel)
	assert.Contains(t, err.Error(), "bad.yaml")
}
