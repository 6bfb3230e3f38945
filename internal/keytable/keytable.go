package keytable

import "fmt"

// Layout grid dimensions shared with the downstream keyboard renderer.
const (
	GridWidth  = 2200
	GridHeight = 500
)

// Key describes one physical key: its position and width on the layout
// grid and the label text printed on the cap.
type Key struct {
	Name   string
	X      int
	Y      int
	Width  int
	Labels []string

	// FontSize overrides the default label size when non-zero. Used for
	// caps whose legend would otherwise overflow (fire buttons) or that
	// carry an oversized icon glyph (joystick).
	FontSize int
}

// LabelCenter returns the horizontal center used for every label of the
// key, independent of label count.
func (k Key) LabelCenter() int {
	return k.X + k.Width/2
}

// Validate checks structural invariants over a table: unique names, one
// or two labels per key, and geometry that stays on the layout grid.
func Validate(keys []Key) error {
	seen := make(map[string]struct{}, len(keys))
	for i, key := range keys {
		if key.Name == "" {
			return fmt.Errorf("key %d: name must not be empty", i)
		}
		if _, dup := seen[key.Name]; dup {
			return fmt.Errorf("key %q: duplicate name", key.Name)
		}
		seen[key.Name] = struct{}{}

		if n := len(key.Labels); n < 1 || n > 2 {
			return fmt.Errorf("key %q: expected 1 or 2 labels, got %d", key.Name, n)
		}
		for j, label := range key.Labels {
			if label == "" {
				return fmt.Errorf("key %q: label %d must not be empty", key.Name, j)
			}
		}

		if key.Width <= 0 {
			return fmt.Errorf("key %q: width must be positive", key.Name)
		}
		if key.X < 0 || key.Y < 0 {
			return fmt.Errorf("key %q: position must be non-negative", key.Name)
		}
		if key.X+key.Width > GridWidth {
			return fmt.Errorf("key %q: exceeds grid width (%d+%d > %d)", key.Name, key.X, key.Width, GridWidth)
		}
		if key.Y >= GridHeight {
			return fmt.Errorf("key %q: row %d outside grid height %d", key.Name, key.Y, GridHeight)
		}
		if key.FontSize < 0 {
			return fmt.Errorf("key %q: font size override must be non-negative", key.Name)
		}
	}
	return nil
}

// Lookup returns the key with the given name, or false when absent.
func Lookup(keys []Key, name string) (Key, bool) {
	for _, key := range keys {
		if key.Name == name {
			return key, true
		}
	}
	return Key{}, false
}
