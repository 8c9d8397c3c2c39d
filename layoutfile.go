package runes

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"slices"

	"gopkg.in/yaml.v3"
)

// SlotSpec places one node of a designed menu.
type SlotSpec struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Icon string  `yaml:"icon"`
	// Size is the node's width and height; it also sets a circular hit area.
	// Zero uses the icon image bounds.
	Size float64 `yaml:"size"`
}

// MenuLayout is a designed menu: the main control, the ring at its expanded
// positions, and the stack. Config fields left out of the document keep
// their DefaultConfig values.
type MenuLayout struct {
	Name   string     `yaml:"name"`
	Config Config     `yaml:"config"`
	Main   SlotSpec   `yaml:"main"`
	Ring   []SlotSpec `yaml:"ring"`
	Stack  []SlotSpec `yaml:"stack"`
}

// UnmarshalYAML decodes a menu on top of DefaultConfig, rejecting unknown
// keys. Errors carry line numbers from the original document.
func (m *MenuLayout) UnmarshalYAML(value *yaml.Node) error {
	if err := checkMenuKeys(value); err != nil {
		return err
	}
	type plain MenuLayout
	p := plain{Config: DefaultConfig()}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*m = MenuLayout(p)
	return nil
}

var (
	menuKeys   = []string{"name", "config", "main", "ring", "stack"}
	configKeys = []string{
		"spacing", "expandDuration", "collapseDuration", "expandEase", "collapseEase",
		"expandFadeDuration", "collapseFadeDuration", "useSpiral",
	}
	vecKeys  = []string{"x", "y"}
	slotKeys = []string{"name", "x", "y", "icon", "size"}
)

// checkMenuKeys walks a menu mapping and reports the first key no field
// decodes into. Node.Decode does not honor Decoder.KnownFields, so nested
// documents are checked here. Non-mapping values are left for Decode to
// reject.
func checkMenuKeys(menu *yaml.Node) error {
	return walkKeys(menu, "menu", menuKeys, func(key string, v *yaml.Node) error {
		switch key {
		case "config":
			return walkKeys(v, "config", configKeys, func(key string, v *yaml.Node) error {
				if key == "spacing" {
					return walkKeys(v, "spacing", vecKeys, nil)
				}
				return nil
			})
		case "main":
			return walkKeys(v, "slot", slotKeys, nil)
		case "ring", "stack":
			if v.Kind != yaml.SequenceNode {
				return nil
			}
			for _, item := range v.Content {
				if err := walkKeys(item, "slot", slotKeys, nil); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// walkKeys checks every key of mapping node n against allowed and calls fn,
// if set, with each key and its value node.
func walkKeys(n *yaml.Node, what string, allowed []string, fn func(key string, v *yaml.Node) error) error {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if !slices.Contains(allowed, k.Value) {
			return fmt.Errorf("runes: line %d: field %s not found in %s", k.Line, k.Value, what)
		}
		if fn != nil {
			if err := fn(k.Value, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Layout is the top-level layout document.
type Layout struct {
	Menus []MenuLayout `yaml:"menus"`
}

// IconSet resolves icon names used in a layout.
type IconSet map[string]*Icon

// ErrEmptyLayout is returned by LoadLayout for documents without menus.
var ErrEmptyLayout = errors.New("runes: layout has no menus")

// LoadLayout parses a YAML layout document. Unknown keys are rejected so
// typos in hand-edited files surface immediately.
func LoadLayout(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("runes: failed to parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks menu names and every menu config.
func (l *Layout) Validate() error {
	if len(l.Menus) == 0 {
		return ErrEmptyLayout
	}
	seen := make(map[string]bool, len(l.Menus))
	for i := range l.Menus {
		m := &l.Menus[i]
		if m.Name == "" {
			return fmt.Errorf("runes: layout menu %d has no name", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("runes: duplicate layout menu %q", m.Name)
		}
		seen[m.Name] = true
		if err := m.Config.Validate(); err != nil {
			return fmt.Errorf("runes: menu %q: %w", m.Name, err)
		}
	}
	return nil
}

// Marshal encodes the layout back to YAML.
func (l *Layout) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("runes: failed to encode layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("runes: failed to encode layout: %w", err)
	}
	return buf.Bytes(), nil
}

// Build creates the nodes of every menu in the layout, adds them to scene
// and returns the menus in document order. Unknown icon names are logged and
// leave the node without an icon. If any menu fails, the menus already built
// are torn down with DisposeMenu so the scene is left as it was.
func (l *Layout) Build(scene *Scene, icons IconSet) ([]*RadialMenu, error) {
	menus := make([]*RadialMenu, 0, len(l.Menus))
	for i := range l.Menus {
		m, err := l.Menus[i].Build(scene, icons)
		if err != nil {
			for _, built := range menus {
				scene.DisposeMenu(built)
			}
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, nil
}

// Build creates this menu's nodes and attaches the menu to scene.
func (ml *MenuLayout) Build(scene *Scene, icons IconSet) (*RadialMenu, error) {
	main := ml.Main.node(ml.Name, icons)
	main.Name = ml.Name
	ring := make([]*Node, len(ml.Ring))
	for i := range ml.Ring {
		ring[i] = ml.Ring[i].node(ml.Name, icons)
	}
	stack := make([]*Node, len(ml.Stack))
	for i := range ml.Stack {
		stack[i] = ml.Stack[i].node(ml.Name, icons)
	}
	m, err := scene.NewMenu(main, ring, stack, ml.Config)
	if err != nil {
		return nil, fmt.Errorf("runes: menu %q: %w", ml.Name, err)
	}
	return m, nil
}

func (s SlotSpec) node(menu string, icons IconSet) *Node {
	var icon *Icon
	if s.Icon != "" {
		var ok bool
		icon, ok = icons[s.Icon]
		if !ok {
			log.Printf("runes: menu %q slot %q: icon %q not found", menu, s.Name, s.Icon)
		}
	}
	n := NewNode(s.Name, icon)
	n.X, n.Y = s.X, s.Y
	if s.Size > 0 {
		n.Width, n.Height = s.Size, s.Size
		n.HitShape = HitCircle{Radius: s.Size / 2}
	}
	return n
}
