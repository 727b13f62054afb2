package core

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout characters.
const (
	LayoutMine = '*'
	LayoutSafe = '.'
)

// Layout is a fixed mine arrangement. Each row is a string of LayoutMine and
// LayoutSafe runes; all rows must have the same length.
type Layout struct {
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// ParseLayout decodes a YAML layout document and checks its shape.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("core: layout: yaml unmarshal: %w", err)
	}
	if _, _, _, err := l.mines(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Marshal encodes the layout as YAML.
func (l *Layout) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("core: layout: yaml marshal: %w", err)
	}
	return data, nil
}

// Size returns the layout width and height.
func (l *Layout) Size() (int, int) {
	if len(l.Rows) == 0 {
		return 0, 0
	}
	return len(l.Rows[0]), len(l.Rows)
}

// mines validates the layout and returns its dimensions and mine indexes.
func (l *Layout) mines() (width, height int, mines []int, err error) {
	height = len(l.Rows)
	if height == 0 {
		return 0, 0, nil, fmt.Errorf("core: layout: %w: no rows", ErrInvalidConfiguration)
	}
	width = len(l.Rows[0])
	for y, row := range l.Rows {
		if len(row) != width {
			return 0, 0, nil, fmt.Errorf("core: layout: %w: row %d has length %d, want %d",
				ErrInvalidConfiguration, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case LayoutMine:
				mines = append(mines, y*width+x)
			case LayoutSafe:
			default:
				return 0, 0, nil, fmt.Errorf("core: layout: %w: unexpected %q at (%d, %d)",
					ErrInvalidConfiguration, row[x], x, y)
			}
		}
	}
	if err := validate(width, height, len(mines)); err != nil {
		return 0, 0, nil, fmt.Errorf("core: layout: %w", err)
	}
	return width, height, mines, nil
}

// NewFromLayout builds a board with mines exactly where the layout puts them.
func NewFromLayout(l *Layout, opts ...Option) (*Board, error) {
	if l == nil {
		return nil, fmt.Errorf("core: layout: %w: nil layout", ErrInvalidConfiguration)
	}
	width, height, mines, err := l.mines()
	if err != nil {
		return nil, err
	}
	return newBoard(width, height, mines, opts), nil
}

// Layout exports the board's mine arrangement.
func (b *Board) Layout() *Layout {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			if b.cells[b.index(x, y)].IsMine {
				sb.WriteByte(LayoutMine)
			} else {
				sb.WriteByte(LayoutSafe)
			}
		}
		rows[y] = sb.String()
	}
	return &Layout{Rows: rows}
}
