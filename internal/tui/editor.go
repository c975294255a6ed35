package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbloom/bloominimg/internal/config"
	"github.com/simonbloom/bloominimg/internal/export"
	"github.com/simonbloom/bloominimg/internal/grid"
	"github.com/simonbloom/bloominimg/internal/imagery"
	"github.com/simonbloom/bloominimg/internal/style"
	"github.com/simonbloom/bloominimg/internal/viz"
)

const tickInterval = 50 * time.Millisecond

// ConfigFileName is where the w key persists the current document.
const ConfigFileName = "overlay.yaml"

type mode int

const (
	modeParams mode = iota
	modeMask
)

// param is one tunable grid value bound to the parameter panel.
type param struct {
	name string
	get  func(*grid.Config) float64
	set  func(*grid.Config, float64)
	step float64
}

var params = []param{
	{"cols",
		func(g *grid.Config) float64 { return float64(g.Cols) },
		func(g *grid.Config, v float64) { g.Cols = clampInt(int(math.Round(v)), config.MinCols, config.MaxCols) },
		1},
	{"opacity min",
		func(g *grid.Config) float64 { return g.OpacityMin },
		func(g *grid.Config, v float64) { g.OpacityMin = clamp(v, 0, g.OpacityMax) },
		0.05},
	{"opacity max",
		func(g *grid.Config) float64 { return g.OpacityMax },
		func(g *grid.Config, v float64) { g.OpacityMax = clamp(v, g.OpacityMin, 1) },
		0.05},
	{"levels",
		func(g *grid.Config) float64 { return float64(g.Levels) },
		func(g *grid.Config, v float64) { g.Levels = clampInt(int(math.Round(v)), 0, 16) },
		1},
	{"duration min",
		func(g *grid.Config) float64 { return g.DurationMin },
		func(g *grid.Config, v float64) { g.DurationMin = clamp(v, 0.1, g.DurationMax) },
		0.5},
	{"duration max",
		func(g *grid.Config) float64 { return g.DurationMax },
		func(g *grid.Config, v float64) { g.DurationMax = clamp(v, g.DurationMin, 30) },
		0.5},
	{"seed",
		func(g *grid.Config) float64 { return float64(g.Seed) },
		func(g *grid.Config, v float64) { g.Seed = int64(math.Round(v)) },
		1},
}

// model is the editor state. The generated field is memoized on the grid
// config; everything else (mask, style, clock) reclassifies rendering without
// touching it.
type model struct {
	doc *config.Document
	src *imagery.Source

	cells   []grid.Cell
	lastCfg grid.Config
	mask    grid.MaskSet

	mode        mode
	paramCursor int
	editing     bool
	editBuf     string
	cellCursor  int

	clock     float64
	outDir    string
	presetIdx int

	status    string
	statusErr bool

	width  int
	height int
}

// NewEditor builds the editor around a document and an optionally preloaded
// image. Exports are written to outDir.
func NewEditor(doc *config.Document, src *imagery.Source, outDir string) *model {
	if src != nil {
		doc.Image = src.Path
		doc.Grid.AspectRatio = src.AspectRatio()
	}
	return &model{
		doc:       doc,
		src:       src,
		mask:      grid.NewMaskSet(),
		outDir:    outDir,
		presetIdx: -1,
		width:     80,
		height:    24,
	}
}

// Run starts the editor program and blocks until it exits.
func Run(doc *config.Document, src *imagery.Source, outDir string) error {
	p := tea.NewProgram(NewEditor(doc, src, outDir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m *model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// field returns the generated cells, regenerating only when the declared
// inputs changed since the previous call.
func (m *model) field() []grid.Cell {
	if m.cells == nil || m.doc.Grid != m.lastCfg {
		m.cells = grid.Generate(m.doc.Grid)
		m.lastCfg = m.doc.Grid
	}
	return m.cells
}

func (m *model) overlay() export.Overlay {
	w, h := 1000, 1000
	if m.src != nil {
		w, h = m.src.Width, m.src.Height
	}
	return export.Overlay{
		Cells:  m.field(),
		Grid:   m.doc.Grid,
		Style:  m.doc.Style,
		Mask:   m.mask,
		Width:  w,
		Height: h,
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.doc.Style.Animate {
			m.clock += tickInterval.Seconds()
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "m":
		if m.mode == modeMask {
			m.mode = modeParams
			m.setStatus("mask mode off", false)
		} else {
			m.mode = modeMask
			m.setStatus("mask mode: move with arrows, space toggles", false)
		}
		return m, nil

	case "a":
		m.doc.Style.Animate = !m.doc.Style.Animate
		return m, nil
	case "d":
		m.doc.Style.Dots = !m.doc.Style.Dots
		return m, nil
	case "t":
		m.doc.Style.Stroke = !m.doc.Style.Stroke
		return m, nil
	case "n":
		m.doc.Style.BlendMode = style.NextBlendMode(m.doc.Style.BlendMode)
		m.setStatus("blend: "+m.doc.Style.BlendMode, false)
		return m, nil
	case "p":
		m.cyclePreset()
		return m, nil
	case "r":
		m.doc.Grid.Seed++
		m.setStatus(fmt.Sprintf("reseeded (%d)", m.doc.Grid.Seed), false)
		return m, nil

	case "o":
		m.openImage()
		return m, nil
	case "w":
		m.saveConfig()
		return m, nil
	case "s":
		m.exportSVG()
		return m, nil
	case "c":
		m.copyComponent()
		return m, nil
	case "b":
		m.exportBundle()
		return m, nil
	}

	if m.mode == modeMask {
		return m.maskKey(msg)
	}
	return m.paramKey(msg)
}

func (m *model) paramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "left", "h":
		p := params[m.paramCursor]
		p.set(&m.doc.Grid, p.get(&m.doc.Grid)-p.step)
	case "right", "l":
		p := params[m.paramCursor]
		p.set(&m.doc.Grid, p.get(&m.doc.Grid)+p.step)
	case "enter":
		m.editing = true
		m.editBuf = ""
	}
	return m, nil
}

func (m *model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		var val float64
		if _, err := fmt.Sscanf(m.editBuf, "%f", &val); err == nil {
			p := params[m.paramCursor]
			p.set(&m.doc.Grid, val)
		}
		m.editing = false
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m *model) maskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.doc.Grid.Rows()
	cols := m.doc.Grid.Cols
	// The cursor can be stale after a cols change shrinks the grid.
	if last := rows*cols - 1; m.cellCursor > last {
		m.cellCursor = last
	}
	row := m.cellCursor / cols
	col := m.cellCursor % cols

	switch msg.String() {
	case "up", "k":
		if row > 0 {
			row--
		}
	case "down", "j":
		if row < rows-1 {
			row++
		}
	case "left", "h":
		if col > 0 {
			col--
		}
	case "right", "l":
		if col < cols-1 {
			col++
		}
	case " ", "enter":
		if m.mask.Toggle(m.cellCursor) {
			m.setStatus(fmt.Sprintf("masked cell %d", m.cellCursor), false)
		} else {
			m.setStatus(fmt.Sprintf("unmasked cell %d", m.cellCursor), false)
		}
		return m, nil
	case "x":
		m.mask.Clear()
		m.setStatus("mask cleared", false)
		return m, nil
	}

	m.cellCursor = row*cols + col
	return m, nil
}

func (m *model) cyclePreset() {
	names := style.ListPresets()
	m.presetIdx = (m.presetIdx + 1) % len(names)
	name := names[m.presetIdx]
	s, _ := style.GetPreset(name)
	m.doc.Style = s
	m.setStatus("preset: "+name, false)
}

func (m *model) openImage() {
	src, err := imagery.Pick()
	if err != nil {
		if err == imagery.ErrCanceled {
			return
		}
		m.setStatus(err.Error(), true)
		return
	}
	m.setImage(src)
	m.setStatus(fmt.Sprintf("loaded %s (%dx%d)", src.Path, src.Width, src.Height), false)
}

// setImage swaps the loaded image in. A geometry change invalidates every
// mask index; clearing is the only correct resolution, never remapping.
func (m *model) setImage(src *imagery.Source) {
	if !src.SameGeometry(m.src) {
		m.mask.Clear()
		m.cellCursor = 0
	}
	m.src = src
	m.doc.Image = src.Path
	m.doc.Grid.AspectRatio = src.AspectRatio()
}

func (m *model) saveConfig() {
	path := filepath.Join(m.outDir, ConfigFileName)
	if err := config.Save(path, m.doc); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("wrote "+path, false)
}

func (m *model) exportSVG() {
	if m.src == nil {
		m.setStatus("load an image first (o)", true)
		return
	}
	path, err := export.WriteSVG(m.outDir, m.overlay())
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("wrote "+path, false)
}

func (m *model) copyComponent() {
	if err := export.CopyComponent(m.overlay()); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("component copied to clipboard", false)
}

func (m *model) exportBundle() {
	imagePath := ""
	if m.src != nil {
		imagePath = m.src.Path
	}
	path, warning, err := export.WriteBundle(m.outDir, m.overlay(), imagePath)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if warning != "" {
		m.setStatus("wrote "+path+" ("+warning+")", true)
		return
	}
	m.setStatus("wrote "+path, false)
}

func (m *model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// brightness computes a cell's displayed opacity at the current clock: a
// triangle wave over the cell's duration, offset by its delay, peaking at
// the generated opacity.
func brightness(c grid.Cell, clock float64) float64 {
	if c.Duration <= 0 {
		return c.Opacity
	}
	t := math.Mod(clock-c.Delay, c.Duration)
	if t < 0 {
		t += c.Duration
	}
	half := c.Duration / 2
	if t < half {
		return c.Opacity * (t / half)
	}
	return c.Opacity * (2 - t/half)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *model) View() string {
	preview := m.viewPreview()
	panel := m.viewPanel()

	body := lipgloss.JoinHorizontal(lipgloss.Top, preview, "  ", panel)

	var b strings.Builder
	b.WriteString("\n  " + viz.Cyan.Render("bloominimg") + "  " + m.viewHeader() + "\n\n")
	b.WriteString(body)
	b.WriteString("\n" + m.viewStatus() + "\n")
	b.WriteString(m.viewHints() + "\n")
	return b.String()
}

func (m *model) viewHeader() string {
	if m.src == nil {
		return viz.Dim.Render("no image loaded, press o to open one")
	}
	return viz.Dim.Render(fmt.Sprintf("%s  %dx%d", m.src.Path, m.src.Width, m.src.Height))
}

// viewPreview draws the animated grid. Each grid cell maps to a block of
// terminal cells; terminal characters are roughly twice as tall as wide, so
// width gets double weight.
func (m *model) viewPreview() string {
	rows := m.doc.Grid.Rows()
	cols := m.doc.Grid.Cols
	cells := m.field()

	availW := m.width - 34
	availH := m.height - 8
	cellW := clampInt(availW/cols, 1, 6)
	cellH := clampInt(availH/rows, 1, 3)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for line := 0; line < cellH; line++ {
			for col := 0; col < cols; col++ {
				idx := row*cols + col
				b.WriteString(m.renderCell(cells[idx], cellW))
			}
			b.WriteString("\n")
		}
	}
	out := strings.TrimRight(b.String(), "\n")
	return viz.PanelBorder.Render(out)
}

// renderCell picks the cell's visual state: animating, static, masked-dim
// (mask mode on) or masked-hidden (mask mode off), plus the mask cursor.
func (m *model) renderCell(c grid.Cell, width int) string {
	masked := m.mask.Contains(c.Index)
	cursor := m.mode == modeMask && c.Index == m.cellCursor

	var body string
	switch {
	case masked && m.mode == modeMask:
		body = viz.MaskedDim.Render(strings.Repeat("░", width))
	case masked:
		body = strings.Repeat(" ", width)
	default:
		op := c.Opacity
		if m.doc.Style.Animate {
			op = brightness(c, m.clock)
		}
		ch := viz.Shade(op)
		body = viz.CellStyle(m.doc.Style.FillColor, op).Render(strings.Repeat(string(ch), width))
	}

	if cursor {
		return viz.Magenta.Render("[") + body + viz.Magenta.Render("]")
	}
	return body
}

func (m *model) viewPanel() string {
	var b strings.Builder

	g := &m.doc.Grid
	for i, p := range params {
		val := fmt.Sprintf("%8.2f", p.get(g))
		if p.name == "cols" || p.name == "levels" || p.name == "seed" {
			val = fmt.Sprintf("%8d", int(p.get(g)))
		}
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor && m.mode == modeParams {
			b.WriteString(viz.Cyan.Render("▸ ") + viz.White.Render(fmt.Sprintf("%-13s", p.name)) + viz.Magenta.Render(val) + "\n")
		} else {
			b.WriteString("  " + viz.Dim.Render(fmt.Sprintf("%-13s", p.name)) + viz.Dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + viz.Dim.Render(fmt.Sprintf("%-13s", "rows")) + viz.Dim.Render(fmt.Sprintf("%8d", g.Rows())) + "\n")
	b.WriteString("  " + viz.Dim.Render(fmt.Sprintf("%-13s", "masked")) + viz.Dim.Render(fmt.Sprintf("%8d", m.mask.Len())) + "\n")

	b.WriteString("\n")
	b.WriteString("  " + flag("animate", m.doc.Style.Animate) + "  " + flag("dots", m.doc.Style.Dots) + "\n")
	b.WriteString("  " + flag("stroke", m.doc.Style.Stroke) + "  " + flag("mask", m.mode == modeMask) + "\n")
	b.WriteString("  " + viz.Dim.Render("blend ") + viz.White.Render(m.doc.Style.BlendMode) + "\n")

	return viz.PanelBorder.Render(strings.TrimRight(b.String(), "\n"))
}

func flag(name string, on bool) string {
	if on {
		return viz.Green.Render("● " + name)
	}
	return viz.Dimmer.Render("○ " + name)
}

func (m *model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return "  " + viz.Yellow.Render("⚠ "+m.status)
	}
	return "  " + viz.Green.Render(m.status)
}

func (m *model) viewHints() string {
	if m.mode == modeMask {
		return "  " + viz.Dim.Render("arrows move  space toggle  x clear  m exit mask  q quit")
	}
	return "  " + viz.Dim.Render("↑↓ select  ←→ adjust  enter edit  m mask  a anim  d dots  t stroke  n blend  p preset  r reseed  o open  w save  s svg  c copy  b bundle  q quit")
}
