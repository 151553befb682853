package level

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for level loading.
var (
	// ErrInvalidLevel is returned when a document cannot be decoded or does
	// not describe a valid game.
	ErrInvalidLevel = errors.New("level: invalid level")

	// ErrUnknownLevel is returned by Builtin for names that do not ship.
	ErrUnknownLevel = errors.New("level: unknown built-in level")
)

// Level is one puzzle definition.
type Level struct {
	Name string `yaml:"name"`
	// Capacity applies to every bottle that does not set its own.
	Capacity int          `yaml:"capacity,omitempty"`
	Bottles  []BottleSpec `yaml:"bottles"`
}

// BottleSpec describes one bottle. Capacity 0 means the level default.
type BottleSpec struct {
	Capacity int
	Contents []string
}

// bottleMapping is the long form of a BottleSpec.
type bottleMapping struct {
	Capacity int      `yaml:"capacity"`
	Contents []string `yaml:"contents"`
}

// UnmarshalYAML accepts a sequence of color names or a
// {capacity, contents} mapping.
func (b *BottleSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var contents []string
		if err := value.Decode(&contents); err != nil {
			return err
		}
		*b = BottleSpec{Contents: contents}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			if k := value.Content[i]; k.Value != "capacity" && k.Value != "contents" {
				return fmt.Errorf("line %d: unknown bottle field %q", k.Line, k.Value)
			}
		}
		var m bottleMapping
		if err := value.Decode(&m); err != nil {
			return err
		}
		*b = BottleSpec{Capacity: m.Capacity, Contents: m.Contents}
		return nil
	default:
		return fmt.Errorf("line %d: bottle must be a list of colors or a mapping", value.Line)
	}
}

// MarshalYAML writes the short flow form unless the bottle has its own
// capacity.
func (b BottleSpec) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range b.Contents {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: c})
	}
	if b.Capacity == 0 {
		return seq, nil
	}

	return &yaml.Node{
		Kind:  yaml.MappingNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "capacity"},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(b.Capacity)},
			{Kind: yaml.ScalarNode, Value: "contents"},
			seq,
		},
	}, nil
}
