package bramble

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// boxDef is the YAML shape of one box in a declarative tree definition.
type boxDef struct {
	Kind string `yaml:"kind"` // box (default), row, column, grid
	Name string `yaml:"name"`

	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Color Color    `yaml:"color"`
	Alpha *float64 `yaml:"alpha"`

	Visible      *bool `yaml:"visible"`
	InputEnabled *bool `yaml:"input"`
	Focusable    bool  `yaml:"focusable"`
	Selectable   bool  `yaml:"selectable"`
	DropTarget   bool  `yaml:"drop_target"`
	Draggable    bool  `yaml:"draggable"`
	SnapBack     bool  `yaml:"snap_back"`
	SnapTargets  bool  `yaml:"snap_to_targets"`
	Z            int   `yaml:"z"`

	// Layout group fields, consulted for row/column/grid kinds.
	Spacing   float64 `yaml:"spacing"`
	Padding   float64 `yaml:"padding"`
	Align     string  `yaml:"align"`
	Stretch   bool    `yaml:"stretch"`
	Reverse   bool    `yaml:"reverse"`
	FixedSize bool    `yaml:"fixed_size"`
	Columns   int     `yaml:"columns"`

	Children []boxDef `yaml:"children"`
}

// LoadTree parses a YAML tree definition and builds the box tree it
// describes. Interaction callbacks cannot be expressed in data; look boxes up
// by name afterwards and attach them in code.
func LoadTree(data []byte) (*Box, error) {
	var def boxDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse tree definition: %w", err)
	}
	return buildBox(def, "")
}

// LoadTreeFile reads and parses a YAML tree definition file.
func LoadTreeFile(path string) (*Box, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree definition: %w", err)
	}
	b, err := LoadTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func buildBox(def boxDef, path string) (*Box, error) {
	name := def.Name
	if name == "" {
		name = def.Kind
	}
	if path == "" {
		path = name
	} else {
		path = path + "/" + name
	}

	b := NewBox(def.Name, Rect{def.X, def.Y, def.Width, def.Height})

	switch def.Kind {
	case "", "box":
	case "row", "column", "grid":
		align, err := parseAlignment(def.Align)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		kind := LayoutRow
		switch def.Kind {
		case "column":
			kind = LayoutColumn
		case "grid":
			kind = LayoutGrid
		}
		b.SetLayout(&Layout{
			Kind:      kind,
			Spacing:   def.Spacing,
			Padding:   UniformInsets(def.Padding),
			Align:     align,
			Stretch:   def.Stretch,
			Reverse:   def.Reverse,
			FixedSize: def.FixedSize,
			Columns:   def.Columns,
		})
	default:
		return nil, fmt.Errorf("%s: unknown kind %q", path, def.Kind)
	}

	b.Background = def.Color
	if def.Alpha != nil {
		b.Alpha = *def.Alpha
	}
	if def.Visible != nil {
		b.Visible = *def.Visible
	}
	if def.InputEnabled != nil {
		b.InputEnabled = *def.InputEnabled
	}
	b.Focusable = def.Focusable
	b.Selectable = def.Selectable
	b.DropTarget = def.DropTarget
	b.DragPolicy = DragPolicy{
		Draggable:     def.Draggable,
		SnapBack:      def.SnapBack,
		SnapToTargets: def.SnapTargets,
	}
	b.ZIndex = def.Z

	for _, childDef := range def.Children {
		child, err := buildBox(childDef, path)
		if err != nil {
			return nil, err
		}
		if err := b.AddChild(child); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return b, nil
}

func parseAlignment(s string) (Alignment, error) {
	switch s {
	case "", "start":
		return AlignStart, nil
	case "end":
		return AlignEnd, nil
	case "center":
		return AlignCenter, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignStart, fmt.Errorf("unknown align %q", s)
}

// FindByName returns the first box in the subtree whose Name matches,
// depth-first in insertion order, or nil. Useful after LoadTree to attach
// callbacks.
func (b *Box) FindByName(name string) *Box {
	if b.Name == name {
		return b
	}
	for _, child := range b.children {
		if found := child.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// UnmarshalYAML parses a hex color string, sharing the #RRGGBB[AA] form used
// by TOML themes. An absent or empty value stays transparent.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*c = Color{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}
