package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

const builtinDir = "levels"

// Builtins returns the names of the levels that ship with the package, in
// sorted order.
func Builtins() []string {
	entries, err := fs.ReadDir(builtinFS, builtinDir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)

	return names
}

// Builtin loads a shipped level by name.
func Builtin(name string) (*Level, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	data, err := builtinFS.ReadFile(path.Join(builtinDir, name+".yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	if err != nil {
		return nil, err
	}

	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("built-in %s: %w", name, err)
	}
	if l.Name == "" {
		l.Name = name
	}

	return l, nil
}
