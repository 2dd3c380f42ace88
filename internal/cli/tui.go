package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/hexrail/pkg/core/grid"
	"github.com/matzehuels/hexrail/pkg/core/hex"
	"github.com/matzehuels/hexrail/pkg/core/hittest"
	"github.com/matzehuels/hexrail/pkg/core/render/board"
	"github.com/matzehuels/hexrail/pkg/core/render/sink"
	"github.com/matzehuels/hexrail/pkg/editor"
)

// Board styles
var (
	boardCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	boardTrackStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(colorDim)
	boardHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// Cell glyphs. Each cell shows its six sides in index order.
const (
	glyphOpen   = "·"
	glyphAdd    = "+"
	glyphRemove = "x"
)

// savedMsg reports the result of writing the board.
type savedMsg struct {
	path string
	err  error
}

// EditModel is the bubbletea model for the terminal editor. The keyboard
// cursor stands in for the pointer: it selects a cell and one of its sides,
// and the editor is driven with the same pointer events the browser sends.
type EditModel struct {
	model  editor.Model
	bounds grid.Bounds
	cursor hex.Axial
	dir    hex.Direction
	output string
	opts   []board.Option
	status string
}

// NewEditModel starts editing g with the cursor on cell (0,0) side 0.
// Pressing w writes the board as SVG to output.
func NewEditModel(g *grid.Grid, output string, opts ...board.Option) EditModel {
	m := EditModel{
		model:  editor.New(g),
		bounds: g.Bounds(),
		output: output,
		opts:   opts,
	}
	if !m.bounds.Contains(m.cursor) {
		m.cursor = hex.Axial{Q: m.bounds.MinQ, R: m.bounds.MinR}
	}
	return m.hover()
}

// Editor returns the current editor model.
func (m EditModel) Editor() editor.Model { return m.model }

// Cursor returns the selected cell and side.
func (m EditModel) Cursor() (hex.Axial, hex.Direction) { return m.cursor, m.dir }

// Status returns the last status line.
func (m EditModel) Status() string { return m.status }

func (m EditModel) Init() tea.Cmd {
	return nil
}

func (m EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			return m.move(hex.Axial{Q: 0, R: -1}), nil
		case "down", "j":
			return m.move(hex.Axial{Q: 0, R: 1}), nil
		case "left", "h":
			return m.move(hex.Axial{Q: -1, R: 0}), nil
		case "right", "l":
			return m.move(hex.Axial{Q: 1, R: 0}), nil
		case "tab":
			m.dir = m.dir.Rotate(1)
			return m.hover(), nil
		case "shift+tab":
			m.dir = m.dir.Rotate(-1)
			return m.hover(), nil
		case "1", "2", "3", "4", "5", "6":
			n, _ := strconv.Atoi(key)
			m.dir = hex.Direction(n - 1)
			return m.hover(), nil
		case " ", "enter":
			return m.click(), nil
		case "esc":
			m.model, _ = editor.Reduce(m.model, editor.PointerLeave{})
			m.status = "pointer left the board"
			return m, nil
		case "w":
			return m, saveBoard(m.output, m.model, m.opts)
		}
	case savedMsg:
		if msg.err != nil {
			m.status = "write failed: " + msg.err.Error()
		} else {
			m.status = "wrote " + msg.path
		}
	}
	return m, nil
}

func (m EditModel) move(step hex.Axial) EditModel {
	next := m.cursor.Add(step)
	if m.bounds.Contains(next) {
		m.cursor = next
	}
	return m.hover()
}

func (m EditModel) aim() editor.PointerMove {
	p := hittest.Aim(m.cursor, m.dir)
	return editor.PointerMove{X: p.X, Y: p.Y}
}

func (m EditModel) hover() EditModel {
	m.model, _ = editor.Reduce(m.model, m.aim())
	h := m.model.Highlight()
	switch {
	case !h.Active:
		m.status = "no side under the cursor"
	case m.model.Stored(h.Target):
		m.status = fmt.Sprintf("cell %d,%d side %d", m.cursor.Q, m.cursor.R, int(m.dir))
	default:
		m.status = fmt.Sprintf("cell %d,%d side %d is on the rim", m.cursor.Q, m.cursor.R, int(m.dir))
	}
	return m
}

func (m EditModel) click() EditModel {
	p := m.aim()
	var changed bool
	m.model, changed = editor.Reduce(m.model, editor.Click{X: p.X, Y: p.Y})
	if !changed {
		m.status = "nothing to toggle here"
		return m
	}
	state := "removed"
	if m.model.Connections(m.cursor)[m.dir] {
		state = "laid"
	}
	m.status = fmt.Sprintf("%s track on cell %d,%d side %d", state, m.cursor.Q, m.cursor.R, int(m.dir))
	return m
}

// saveBoard renders the model and writes it as SVG.
func saveBoard(path string, model editor.Model, opts []board.Option) tea.Cmd {
	return func() tea.Msg {
		data := sink.RenderSVG(editor.Render(model, opts...))
		return savedMsg{path: path, err: os.WriteFile(path, data, 0o644)}
	}
}

// cellLabel shows the sides of a: the side number when laid, a dot when
// open, and the pending change on the hovered side.
func (m EditModel) cellLabel(a hex.Axial) string {
	conn := m.model.Connections(a)
	var preview *hittest.Target
	if h := m.model.Highlight(); h.Active {
		preview = &h.Target
	}
	pd, hovered := board.Preview(a, preview)

	var b strings.Builder
	for _, d := range hex.Directions {
		switch {
		case hovered && d == pd && conn[d]:
			b.WriteString(glyphRemove)
		case hovered && d == pd:
			b.WriteString(glyphAdd)
		case conn[d]:
			b.WriteString(strconv.Itoa(int(d) + 1))
		default:
			b.WriteString(glyphOpen)
		}
	}
	return b.String()
}

func (m EditModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Hexrail"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→ cell  1-6/tab side  space toggle  esc leave  w write  q quit"))
	b.WriteString("\n\n")

	headers := []string{`r\q`}
	for q := m.bounds.MinQ; q <= m.bounds.MaxQ; q++ {
		headers = append(headers, strconv.Itoa(q))
	}

	rows := [][]string{}
	for r := m.bounds.MinR; r <= m.bounds.MaxR; r++ {
		row := []string{strconv.Itoa(r)}
		for q := m.bounds.MinQ; q <= m.bounds.MaxQ; q++ {
			row = append(row, m.cellLabel(hex.Axial{Q: q, R: r}))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 || col == 0 {
				return boardHeaderStyle
			}
			a := hex.Axial{Q: m.bounds.MinQ + col - 1, R: m.bounds.MinR + row}
			switch {
			case a == m.cursor:
				return boardCursorStyle
			case hasTrack(m.model.Connections(a)):
				return boardTrackStyle
			default:
				return boardEmptyStyle
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleNumber.Render(fmt.Sprintf("%d sides", m.model.Count())), StyleDim.Render(m.status)))

	return b.String()
}

func hasTrack(conn [hex.NumDirections]bool) bool {
	for _, c := range conn {
		if c {
			return true
		}
	}
	return false
}
