package cli

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/deck/internal/config"
	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/card"
	"github.com/matzehuels/deck/pkg/errors"
	"github.com/matzehuels/deck/pkg/geom"
	"github.com/matzehuels/deck/pkg/gesture"
	deckio "github.com/matzehuels/deck/pkg/io"
	"github.com/matzehuels/deck/pkg/snap"
	"github.com/matzehuels/deck/pkg/workspace"
)

// Rows taken by the title and status bars.
const (
	topRows    = 1
	chromeRows = 2
)

// mousePointer is the pointer id of the terminal mouse.
const mousePointer = 1

var navKeys = map[string]workspace.Key{
	"left":  workspace.KeyArrowLeft,
	"right": workspace.KeyArrowRight,
	"up":    workspace.KeyArrowUp,
	"down":  workspace.KeyArrowDown,
	"home":  workspace.KeyHome,
	"end":   workspace.KeyEnd,
}

const tuiHelp = "tab/←→ focus  drag header move  drag edge resize  m mode  f free  z max  x close  n new  q quit"

// =============================================================================
// Command
// =============================================================================

// tuiCommand creates the tui command for the interactive workspace.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		save    string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "tui [workspace.json]",
		Short: "Run the interactive terminal workspace",
		Long: `Run the interactive terminal workspace.

Cards are drawn as boxes scaled from workspace pixels to terminal cells. Drag
a header with the mouse to move a card, drag an edge or corner to resize it,
and use the keyboard to focus, maximize, close and add cards or to switch
arrangement modes.

Without a file the workspace starts empty. --save writes the workspace back
on quit.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeWorkspaceFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runTUI(cmd.Context(), input, save, logFile)
		},
	}

	cmd.Flags().StringVarP(&save, "save", "s", "", "write the workspace to this file on quit")
	cmd.Flags().StringVar(&logFile, "log", "", "write workspace logs to this file")

	return cmd
}

// runTUI opens the workspace and runs the program until the user quits or
// ctx is cancelled.
func (c *CLI) runTUI(ctx context.Context, input, save, logFile string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; workspace logs go to a file.
	logger, closeLog, err := newFileLogger(logFile, c.Logger.GetLevel())
	if err != nil {
		return err
	}
	defer closeLog()

	var ws *workspace.Workspace
	if input != "" {
		ws, err = c.openWorkspace(input, logger)
		if err != nil {
			return fmt.Errorf("load workspace %s: %w", input, err)
		}
	} else {
		ws = workspace.New(cfg.WorkspaceOptions(logger))
	}

	model := newDeckModel(ws, cfg.TUI, save)
	final, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	).Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	if m, ok := final.(deckModel); ok {
		if m.err != nil {
			return m.err
		}
		if m.saved {
			printSuccess("Saved %d cards", m.ws.Len())
			printFile(save)
		}
	}
	return nil
}

// =============================================================================
// deckModel - Interactive workspace
// =============================================================================

// deckModel is the bubbletea model of the interactive workspace. Mouse cells
// map to workspace pixels through the configured cell size.
type deckModel struct {
	ws       *workspace.Workspace
	cellW    float64
	cellH    float64
	width    int
	height   int
	savePath string
	newID    func() string

	pressed bool
	added   int
	status  string
	saved   bool
	err     error
}

func newDeckModel(ws *workspace.Workspace, cells config.TUIConfig, savePath string) deckModel {
	return deckModel{
		ws:       ws,
		cellW:    cmp.Or(cells.CellWidth, 8),
		cellH:    cmp.Or(cells.CellHeight, 16),
		savePath: savePath,
		newID:    uuid.NewString,
	}
}

func (m deckModel) Init() tea.Cmd {
	return nil
}

func (m deckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := max(msg.Height-chromeRows, 1)
		if err := m.ws.SetViewport(float64(max(msg.Width, 1))*m.cellW, float64(rows)*m.cellH); err != nil {
			m.status = errors.UserMessage(err)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m deckModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.quit()
		return m, tea.Quit
	case "esc":
		m.ws.PointerCancel(gesture.PointerEvent{PointerID: mousePointer})
		m.pressed = false
	case "tab":
		m.ws.FocusNext()
	case "shift+tab":
		m.ws.FocusPrev()
	case "m":
		m.ws.CycleArrangementMode()
		m.status = "mode " + m.ws.Mode().String()
	case "f":
		m.ws.SetArrangementMode(arrange.ModeFree)
		m.status = "mode " + m.ws.Mode().String()
	case "z":
		if id := m.ws.Focused(); id != "" {
			m.ws.MaximizeToggle(id)
		}
	case "x":
		if id := m.ws.Focused(); id != "" {
			m.ws.Close(id)
			m.status = "closed " + id
		}
	case "n":
		m.addCard()
	default:
		if k, ok := navKeys[key]; ok {
			m.ws.HandleKey(k)
		}
	}
	return m, nil
}

// quit saves the workspace when a save path is set.
func (m *deckModel) quit() {
	if m.savePath == "" {
		return
	}
	if err := deckio.ExportJSON(deckio.FromWorkspace(m.ws), m.savePath); err != nil {
		m.err = fmt.Errorf("save workspace %s: %w", m.savePath, err)
		return
	}
	m.saved = true
}

// addCard adds a card of the next type in turn.
func (m *deckModel) addCard() {
	typ := card.Types[m.added%len(card.Types)]
	m.added++
	id := fmt.Sprintf("%s-%s", typ, shortID(m.newID()))
	if err := m.ws.Add(card.Card{ID: id, Type: typ, Title: string(typ)}); err != nil {
		m.status = errors.UserMessage(err)
		return
	}
	m.status = "added " + id
}

func shortID(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// =============================================================================
// Mouse
// =============================================================================

// controlKind is a header button.
type controlKind uint8

const (
	controlNone controlKind = iota
	controlMaximize
	controlClose
)

// hit is the result of hit-testing a canvas cell.
type hit struct {
	target  workspace.Target
	control controlKind
}

func (m *deckModel) handleMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-topRows
	ev := m.pointerEvent(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		h := m.hitTest(col, row)
		ev.OverID = h.target.CardID
		m.pressed = m.ws.PointerDown(h.target, ev)
		switch h.control {
		case controlMaximize:
			m.ws.MaximizeToggle(h.target.CardID)
		case controlClose:
			m.ws.Close(h.target.CardID)
			m.status = "closed " + h.target.CardID
		}
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		ev.OverID = m.hitTest(col, row).target.CardID
		m.ws.PointerMove(ev)
	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		ev.OverID = m.hitTest(col, row).target.CardID
		m.ws.PointerUp(ev)
		m.pressed = false
	}
}

// pointerEvent maps a canvas cell to the pixel at its center.
func (m *deckModel) pointerEvent(col, row int) gesture.PointerEvent {
	return gesture.PointerEvent{
		PointerID: mousePointer,
		X:         (float64(col) + 0.5) * m.cellW,
		Y:         (float64(row) + 0.5) * m.cellH,
	}
}

// hitTest finds the topmost visible card at a canvas cell and the part of it
// that was hit.
func (m *deckModel) hitTest(col, row int) hit {
	layout := m.ws.Layout()
	slices.SortStableFunc(layout, func(a, b arrange.Transform) int { return cmp.Compare(b.ZIndex, a.ZIndex) })

	for _, t := range layout {
		if t.Opacity == 0 {
			continue
		}
		b := m.cellBox(visualRect(t))
		if !b.contains(col, row) {
			continue
		}
		target := workspace.Target{Kind: workspace.TargetBody, CardID: t.ID}
		c, _ := m.ws.Card(t.ID)
		if !t.Managed && !c.Maximized {
			if h, ok := handleAt(b, col, row); ok {
				target.Kind, target.Handle = workspace.TargetHandle, h
				return hit{target: target}
			}
		}
		if row == b.r0 {
			target.Kind = workspace.TargetHeader
			if b.width() >= 8 {
				switch col {
				case b.c1 - 4:
					target.Kind = workspace.TargetControl
					return hit{target: target, control: controlMaximize}
				case b.c1 - 2:
					target.Kind = workspace.TargetControl
					return hit{target: target, control: controlClose}
				}
			}
		}
		return hit{target: target}
	}
	return hit{target: workspace.Target{Kind: workspace.TargetWorkspace}}
}

// handleAt maps border cells to resize handles. The top edge belongs to the
// header, so only its corners resize.
func handleAt(b box, col, row int) (geom.Handle, bool) {
	switch {
	case row == b.r1 && col == b.c1:
		return geom.HandleSE, true
	case row == b.r1 && col == b.c0:
		return geom.HandleSW, true
	case row == b.r0 && col == b.c0:
		return geom.HandleNW, true
	case row == b.r0 && col == b.c1:
		return geom.HandleNE, true
	case row == b.r0:
		return 0, false
	case col == b.c0:
		return geom.HandleW, true
	case col == b.c1:
		return geom.HandleE, true
	case row == b.r1:
		return geom.HandleS, true
	}
	return 0, false
}

// visualRect applies a transform's scale about the frame center and then
// its offset.
func visualRect(t arrange.Transform) geom.Rect {
	r := t.Frame
	if t.Scale > 0 && t.Scale != 1 {
		w, h := r.Width*t.Scale, r.Height*t.Scale
		r = geom.Rect{X: r.CenterX() - w/2, Y: r.CenterY() - h/2, Width: w, Height: h}
	}
	r.X += t.Offset.X
	r.Y += t.Offset.Y
	return r
}

// cellBox converts a pixel rectangle to the cells it covers.
func (m *deckModel) cellBox(r geom.Rect) box {
	b := box{
		c0: int(math.Floor(r.X / m.cellW)),
		r0: int(math.Floor(r.Y / m.cellH)),
		c1: int(math.Ceil(r.Right()/m.cellW)) - 1,
		r1: int(math.Ceil(r.Bottom()/m.cellH)) - 1,
	}
	b.c1 = max(b.c1, b.c0)
	b.r1 = max(b.r1, b.r0)
	return b
}

// =============================================================================
// View
// =============================================================================

func (m deckModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.titleBar())
	b.WriteString("\n")
	b.WriteString(m.drawCanvas().render())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StyleHighlight.Render(m.status))
	} else {
		b.WriteString(StyleDim.Render(tuiHelp))
	}
	return b.String()
}

func (m deckModel) titleBar() string {
	parts := []string{
		StyleTitle.Render(appName),
		StyleDim.Render(m.ws.Mode().String()),
		StyleDim.Render(fmt.Sprintf("%d cards", m.ws.Len())),
	}
	if id := m.ws.Focused(); id != "" {
		if c, ok := m.ws.Card(id); ok {
			parts = append(parts, StyleValue.Render(c.Title))
		}
	}
	switch {
	case m.ws.Dragging() != "":
		parts = append(parts, StyleWarning.Render("dragging "+m.ws.Dragging()))
	case m.ws.Resizing() != "":
		parts = append(parts, StyleWarning.Render("resizing "+m.ws.Resizing()))
	}
	return strings.Join(parts, StyleDim.Render(" · "))
}

func (m deckModel) drawCanvas() *canvas {
	cv := newCanvas(m.width, m.height-chromeRows)

	layout := m.ws.Layout()
	slices.SortStableFunc(layout, func(a, b arrange.Transform) int { return cmp.Compare(a.ZIndex, b.ZIndex) })

	focused, dragging, drop := m.ws.Focused(), m.ws.Dragging(), m.ws.DropTarget()
	for _, t := range layout {
		if t.Opacity == 0 {
			continue
		}
		r := visualRect(t)
		if t.ID == dragging && t.Managed {
			off := m.ws.DragOffset()
			r.X += off.X
			r.Y += off.Y
		}
		c, ok := m.ws.Card(t.ID)
		if !ok {
			continue
		}

		style := cellBorder
		switch {
		case t.ID == drop:
			style = cellDrop
		case t.ID == focused:
			style = cellFocused
		case t.Opacity < 0.6:
			style = cellDim
		}
		m.drawCard(cv, m.cellBox(r), c, style)
	}

	for _, g := range m.ws.Guides() {
		m.drawGuide(cv, g)
	}
	return cv
}

func (m deckModel) drawCard(cv *canvas, b box, c card.Card, style cellStyle) {
	cv.fill(b)
	cv.frame(b, style)
	limit := b.c1 - 1
	if b.width() >= 8 {
		limit = b.c1 - 5
		cv.set(b.c1-4, b.r0, '□', cellControl)
		cv.set(b.c1-2, b.r0, '×', cellControl)
	}
	titleStyle := cellTitle
	if style == cellDim {
		titleStyle = cellDim
	}
	cv.text(b.c0+2, b.r0, " "+c.Title+" ", titleStyle, limit)
	if b.height() >= 3 {
		info := string(c.Type)
		if c.SnappedTo != 0 {
			info += " · " + c.SnappedTo.String()
		}
		cv.text(b.c0+2, b.r0+1, info, cellText, b.c1-1)
	}
}

// drawGuide draws a guide over blank cells and card borders.
func (m deckModel) drawGuide(cv *canvas, g snap.Guide) {
	if g.Orientation == snap.Vertical {
		col := int(g.Pos / m.cellW)
		for row := int(g.Start / m.cellH); row <= int(g.End/m.cellH); row++ {
			m.guideCell(cv, col, row, '┆')
		}
		return
	}
	row := int(g.Pos / m.cellH)
	for col := int(g.Start / m.cellW); col <= int(g.End/m.cellW); col++ {
		m.guideCell(cv, col, row, '┄')
	}
}

func (m deckModel) guideCell(cv *canvas, col, row int, r rune) {
	if col < 0 || row < 0 || col >= cv.w || row >= cv.h {
		return
	}
	switch cv.styles[row][col] {
	case cellBlank, cellBorder, cellFocused, cellDim:
		cv.set(col, row, r, cellGuide)
	}
}
