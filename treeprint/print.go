package treeprint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for drawing.
type Config struct {
	LineWidth int            // maximum line width in en; 0 means unlimited
	Colored   bool           // use Palette for output
	Palette   *Palette       // colors to use; nil selects a default palette
	Context   *uax11.Context // context for measuring labels; nil selects uax11.LatinContext
}

// Palette holds the colors for inner nodes, leafs and the edges between them.
type Palette struct {
	Inner, Leaf, Edge *color.Color
}

// DefaultPalette is the palette used if Config.Palette is nil.
var DefaultPalette = Palette{
	Inner: color.New(color.FgBlue, color.Bold),
	Leaf:  color.New(color.FgGreen),
	Edge:  color.New(color.Faint),
}

// Edges of the diagram. Every segment is 4 en wide.
const (
	upperEdge = "┌── "
	lowerEdge = "└── "
	vertical  = "│   "
	blank     = "    "
	ellipsis  = "…"
)

var setupGraphemes sync.Once

// Print draws a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[E comparable](t *bintree.Tree[E], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Fprint(os.Stdout, t, config)
}

// Fprint draws a tree to w, one element per line. The empty tree produces
// no output.
//
// config may be nil, resulting in an uncolored diagram of unlimited width.
func Fprint[E comparable](w io.Writer, t *bintree.Tree[E], config *Config) error {
	if w == nil {
		return fmt.Errorf("treeprint: %w", bintree.ErrIllegalArguments)
	}
	if config == nil {
		config = &Config{}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &printer{out: w, config: *config}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if p.config.Palette == nil {
		p.config.Palette = &DefaultPalette
	}
	if t.IsEmpty() {
		return nil
	}
	drawSubtree(p, t, "", root)
	if tr := T(); p.err != nil && tr != nil {
		tr.Errorf("treeprint: %v", p.err)
	}
	return p.err
}

type position int8

const (
	root position = iota
	upper
	lower
)

// connector returns the edge leading from the parent to a node.
func (pos position) connector() string {
	switch pos {
	case upper:
		return upperEdge
	case lower:
		return lowerEdge
	}
	return ""
}

// extension returns the prefix segment for the children of a node. Rows
// between a node and its parent carry a vertical line.
func (pos position) extension(towardsUpper bool) string {
	switch pos {
	case upper:
		if towardsUpper {
			return blank
		}
		return vertical
	case lower:
		if towardsUpper {
			return vertical
		}
		return blank
	}
	return ""
}

// drawSubtree is called for non-empty trees only.
func drawSubtree[E comparable](p *printer, t *bintree.Tree[E], prefix string, pos position) {
	elem, _ := t.Root()
	left, _ := t.Left()
	right, _ := t.Right()
	if !right.IsEmpty() {
		drawSubtree(p, right, prefix+pos.extension(true), upper)
	}
	isLeaf := left.IsEmpty() && right.IsEmpty()
	p.line(prefix+pos.connector(), fmt.Sprintf("%v", elem), isLeaf)
	if !left.IsEmpty() {
		drawSubtree(p, left, prefix+pos.extension(false), lower)
	}
}

type printer struct {
	out    io.Writer
	config Config
	err    error
}

func (p *printer) line(edges string, label string, isLeaf bool) {
	if p.err != nil {
		return
	}
	if p.config.LineWidth > 0 {
		room := p.config.LineWidth - p.width(edges)
		label = p.fit(label, room)
	}
	var sb strings.Builder
	if p.config.Colored {
		sb.WriteString(p.config.Palette.Edge.Sprint(edges))
		if isLeaf {
			sb.WriteString(p.config.Palette.Leaf.Sprint(label))
		} else {
			sb.WriteString(p.config.Palette.Inner.Sprint(label))
		}
	} else {
		sb.WriteString(edges)
		sb.WriteString(label)
	}
	sb.WriteByte('\n')
	_, p.err = io.WriteString(p.out, sb.String())
}

// width returns the display width of s in en.
//
// Single-byte graphemes are narrow. uax11 classifies ASCII digits, '#' and '*'
// by their emoji property (keycap bases) and would count them as wide.
func (p *printer) width(s string) int {
	if s == "" {
		return 0
	}
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		if len(g) == 1 && g[0] < utf8.RuneSelf {
			if g[0] >= ' ' && g[0] != 0x7f {
				w++
			}
			continue
		}
		w += uax11.Width([]byte(g), p.config.Context)
	}
	return w
}

// fit truncates label to at most room en, marking truncation with an ellipsis.
func (p *printer) fit(label string, room int) string {
	if p.width(label) <= room {
		return label
	}
	if room < 1 {
		return ""
	}
	runes := []rune(label)
	for i := len(runes) - 1; i > 0; i-- {
		s := string(runes[:i]) + ellipsis
		if p.width(s) <= room {
			return s
		}
	}
	return ellipsis
}

// ErrNoTerminal is returned by TerminalWidth if stdout is not a terminal.
var ErrNoTerminal = errors.New("treeprint: stdout is not a terminal")

// TerminalWidth returns the width of the terminal attached to stdout.
func TerminalWidth() (int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, ErrNoTerminal
	}
	w, _, err := term.GetSize(fd)
	return w, err
}

// ConfigFromTerminal is a simple helper for creating a drawing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets Config.LineWidth accordingly. Colors are used for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if w, err := TerminalWidth(); err == nil {
		config.Colored = true
		if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 79
	}
	if tr := T(); tr != nil {
		tr.P("format", "console").Infof("setting line width to %d en", config.LineWidth)
	}
	return config
}
