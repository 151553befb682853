package level

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/logdot/bottle-solver/bottle"
	"github.com/logdot/bottle-solver/game"
)

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	return Load(bytes.NewReader(data))
}

// Load decodes and validates a level document read from r.
func Load(r io.Reader) (*Level, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l Level
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLevel)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	if _, err := l.Game(); err != nil {
		return nil, err
	}

	return &l, nil
}

// LoadFile reads a level from path. A level without a name is named after
// the file.
func LoadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return l, nil
}

// Game builds the game described by l and validates it.
func (l *Level) Game() (game.Game, error) {
	bs := make([]bottle.Bottle, len(l.Bottles))
	for i, spec := range l.Bottles {
		capacity := spec.Capacity
		if capacity == 0 {
			capacity = l.Capacity
		}
		colors := make([]bottle.Color, len(spec.Contents))
		for j, name := range spec.Contents {
			c, err := bottle.ParseColor(name)
			if err != nil {
				return nil, fmt.Errorf("%w: bottle %d: %w", ErrInvalidLevel, i, err)
			}
			colors[j] = c
		}
		bs[i] = bottle.New(capacity, colors...)
	}

	g := game.New(bs...)
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}

	return g, nil
}

// FromGame describes g as a level. The first bottle's capacity becomes the
// default; other bottles only record a capacity when it differs.
func FromGame(name string, g game.Game) *Level {
	l := &Level{Name: name, Bottles: make([]BottleSpec, len(g))}
	if len(g) > 0 {
		l.Capacity = g[0].Capacity()
	}
	for i, b := range g {
		spec := BottleSpec{Contents: make([]string, b.Len())}
		if b.Capacity() != l.Capacity {
			spec.Capacity = b.Capacity()
		}
		for j := range spec.Contents {
			spec.Contents[j] = strings.ToLower(b.At(j).String())
		}
		l.Bottles[i] = spec
	}

	return l
}

// Encode writes l as a YAML document.
func Encode(w io.Writer, l *Level) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}

	return enc.Close()
}
