package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/percolation/lattice"
)

// Plain glyphs, one per site.
const (
	glyphOccupied = '#'
	glyphEmpty    = '.'
	glyphPath     = '*'
)

var (
	occupiedStyle = lipgloss.NewStyle().Background(lipgloss.Color("12"))
	emptyStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	pathStyle     = lipgloss.NewStyle().Background(lipgloss.Color("13"))
	captionStyle  = lipgloss.NewStyle().Bold(true)
)

// TextOption configures Text.
type TextOption func(*textOptions)

type textOptions struct {
	plain   bool
	flip    bool
	path    map[lattice.Cell]struct{}
	caption string
}

// WithPlain renders ASCII glyphs ('#' occupied, '.' empty, '*' path)
// instead of colored blocks.
func WithPlain() TextOption {
	return func(o *textOptions) { o.plain = true }
}

// WithFlip draws row 0 at the bottom.
func WithFlip() TextOption {
	return func(o *textOptions) { o.flip = true }
}

// WithPath highlights the given cells, typically a spanning path.
func WithPath(path []lattice.Cell) TextOption {
	return func(o *textOptions) {
		o.path = make(map[lattice.Cell]struct{}, len(path))
		for _, c := range path {
			o.path[c] = struct{}{}
		}
	}
}

// WithCaption adds a bold line above the grid.
func WithCaption(caption string) TextOption {
	return func(o *textOptions) { o.caption = caption }
}

// Text renders l as one text line per row.
func Text(l *lattice.Lattice, opts ...TextOption) string {
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := l.Size()
	var sb strings.Builder
	if o.caption != "" {
		if o.plain {
			sb.WriteString(o.caption)
		} else {
			sb.WriteString(captionStyle.Render(o.caption))
		}
		sb.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		row := i
		if o.flip {
			row = n - 1 - i
		}
		for col := 0; col < n; col++ {
			_, onPath := o.path[lattice.Cell{Row: row, Col: col}]
			occupied := l.Occupied(row, col)
			if o.plain {
				sb.WriteRune(plainGlyph(occupied, onPath))
				continue
			}
			sb.WriteString(cellStyle(occupied, onPath).Render("  "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func plainGlyph(occupied, onPath bool) rune {
	switch {
	case onPath:
		return glyphPath
	case occupied:
		return glyphOccupied
	default:
		return glyphEmpty
	}
}

func cellStyle(occupied, onPath bool) lipgloss.Style {
	switch {
	case onPath:
		return pathStyle
	case occupied:
		return occupiedStyle
	default:
		return emptyStyle
	}
}
