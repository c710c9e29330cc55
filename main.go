package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/tides/internal/config"
	"github.com/llehouerou/tides/internal/errmsg"
	"github.com/llehouerou/tides/internal/icons"
	"github.com/llehouerou/tides/internal/keymap"
	"github.com/llehouerou/tides/internal/layout"
	"github.com/llehouerou/tides/internal/layouteditor"
	"github.com/llehouerou/tides/internal/state"
)

// The preview renders the workspace in terminal cells, so splitters are a
// single cell wide rather than the pixel thickness the GUI uses.
const previewSplitterPx = 1

// helpKeys adapts the keymap bindings to the bubbles help component.
type helpKeys struct{}

func (helpKeys) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(keymap.All))
	for _, b := range keymap.All {
		if b.Action == keymap.ActionHelp || b.Action == keymap.ActionPrevPane {
			continue
		}
		bindings = append(bindings, b.KeyBinding())
	}
	return bindings
}

func (k helpKeys) FullHelp() [][]key.Binding {
	contexts := []string{"selection", "tree", "splitter", "history", "global"}
	rows := make([][]key.Binding, 0, len(contexts))
	for _, ctx := range contexts {
		var row []key.Binding
		for _, b := range keymap.ByContext(ctx) {
			row = append(row, b.KeyBinding())
		}
		rows = append(rows, row)
	}
	return rows
}

type model struct {
	session  *layouteditor.Session
	stateMgr *state.Manager
	keys     *keymap.Resolver
	help     help.Model
	width    int
	height   int
}

func initialModel() (model, error) {
	appCfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	icons.Init(appCfg.UI.IconStyle)

	layoutPath, err := config.LayoutPath()
	if err != nil {
		return model{}, err
	}
	cfg := config.LoadLayout(layoutPath)

	session := layouteditor.New(cfg, func(c layout.Config) {
		if err := config.SaveLayout(layoutPath, c); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpLayoutSave, layoutPath, err))
		}
	})
	session.SetWorkspaceSize(appCfg.UI.WindowWidth, appCfg.UI.WindowHeight)

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, err
	}

	if saved, err := stateMgr.GetSession(); err == nil && saved != nil {
		if saved.SelectedLeafID != "" {
			session.SelectLeaf(saved.SelectedLeafID)
		}
	}
	session.EnsureSelection()

	return model{
		session:  session,
		stateMgr: stateMgr,
		keys:     keymap.NewResolver(keymap.All),
		help:     help.New(),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) canvasHeight() int {
	h := m.height - 1 // reserve the help line
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) saveSessionState() {
	m.stateMgr.SaveSession(state.SessionState{
		SelectedLeafID:  m.session.SelectedLeafID(),
		WorkspaceWidth:  m.width,
		WorkspaceHeight: m.height,
		EditMode:        true,
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.session.SetWorkspaceSize(m.width, m.canvasHeight())
		m.saveSessionState()

	case tea.KeyMsg:
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionQuit:
			m.saveSessionState()
			if err := m.stateMgr.Close(); err != nil {
				fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStateSave, err))
			}
			return m, tea.Quit
		case keymap.ActionHelp:
			m.help.ShowAll = !m.help.ShowAll
		case keymap.ActionNextPane:
			m.selectAdjacentLeaf(1)
		case keymap.ActionPrevPane:
			m.selectAdjacentLeaf(-1)
		case keymap.ActionSplitVertical:
			m.session.SplitSelectedLeaf(layout.AxisVertical.Code(), layout.PanelSpacer.Code())
		case keymap.ActionSplitHorizontal:
			m.session.SplitSelectedLeaf(layout.AxisHorizontal.Code(), layout.PanelSpacer.Code())
		case keymap.ActionDeletePane:
			m.session.DeleteSelectedLeaf()
		case keymap.ActionCyclePanel:
			m.cycleSelectedPanel()
		case keymap.ActionGrowPane:
			m.nudgeSelectedRatio(0.05)
		case keymap.ActionShrinkPane:
			m.nudgeSelectedRatio(-0.05)
		case keymap.ActionUndo:
			m.session.Undo()
		case keymap.ActionRedo:
			m.session.Redo()
		case keymap.ActionResetLayout:
			m.session.ResetToDefault()
		}
		m.saveSessionState()
	}

	return m, nil
}

// selectAdjacentLeaf moves the selection by delta in tree order, wrapping
// around at either end.
func (m *model) selectAdjacentLeaf(delta int) {
	cfg := m.session.Layout()
	ids := cfg.Root.LeafIDs()
	if len(ids) == 0 {
		m.session.AddRootLeaf(layout.PanelTrackList.Code())
		return
	}
	index := 0
	for i, id := range ids {
		if id == m.session.SelectedLeafID() {
			index = (i + delta + len(ids)) % len(ids)
			break
		}
	}
	m.session.SelectLeaf(ids[index])
}

// cycleSelectedPanel replaces the selected leaf's panel with the next
// selectable panel kind, wrapping from the last back to the first.
func (m *model) cycleSelectedPanel() {
	cfg := m.session.Layout()
	current, ok := cfg.Root.PanelForLeaf(m.session.SelectedLeafID())
	if !ok {
		return
	}
	nextCode := current.Code() + 1
	if nextCode > layout.PanelImportButtonCluster.Code() {
		nextCode = layout.PanelButtonCluster.Code()
	}
	m.session.ReplaceSelectedLeaf(nextCode)
}

// nudgeSelectedRatio adjusts the split directly enclosing the selected leaf.
func (m *model) nudgeSelectedRatio(delta float64) {
	cfg := m.session.Layout()
	split := parentSplitOf(cfg.Root, m.session.SelectedLeafID())
	if split == nil {
		return
	}
	m.session.CommitSplitterRatio(split.ID, split.Ratio+delta)
}

func parentSplitOf(root *layout.Node, leafID string) *layout.Node {
	var parent *layout.Node
	root.Walk(func(n *layout.Node) {
		if n.Kind != layout.NodeSplit {
			return
		}
		for _, child := range []*layout.Node{n.First, n.Second} {
			if child != nil && child.Kind == layout.NodeLeaf && child.ID == leafID {
				parent = n
			}
		}
	})
	return parent
}

// cellOwner marks what occupies one canvas cell.
type cellOwner struct {
	leaf     int // index into metrics.Leaves, -1 if none
	splitter bool
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	metrics := m.session.Metrics(previewSplitterPx)
	w, h := m.width, m.canvasHeight()

	grid := make([][]cellOwner, h)
	for y := range grid {
		grid[y] = make([]cellOwner, w)
		for x := range grid[y] {
			grid[y][x] = cellOwner{leaf: -1}
		}
	}
	for i, leaf := range metrics.Leaves {
		fillRect(grid, leaf.X, leaf.Y, leaf.W, leaf.H, cellOwner{leaf: i})
	}
	for _, sp := range metrics.Splitters {
		fillRect(grid, sp.X, sp.Y, sp.W, sp.H, cellOwner{leaf: -1, splitter: true})
	}

	labels := make([]string, len(metrics.Leaves))
	styles := make([]lipgloss.Style, len(metrics.Leaves))
	selected := m.session.SelectedLeafID()
	for i, leaf := range metrics.Leaves {
		labels[i] = leafLabel(leaf, leaf.ID == selected)
		styles[i] = leafStyle(leaf.Panel, leaf.ID == selected)
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		x := 0
		for x < w {
			owner := grid[y][x]
			run := 1
			for x+run < w && grid[y][x+run] == owner {
				run++
			}
			b.WriteString(renderRun(owner, run, x, y, metrics, labels, styles))
			x += run
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(helpKeys{}))
	return b.String()
}

func fillRect(grid [][]cellOwner, x, y, w, h int, owner cellOwner) {
	for row := y; row < y+h && row < len(grid); row++ {
		if row < 0 {
			continue
		}
		for col := x; col < x+w && col < len(grid[row]); col++ {
			if col >= 0 {
				grid[row][col] = owner
			}
		}
	}
}

var (
	splitterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

func renderRun(owner cellOwner, run, x, y int, metrics layout.Metrics, labels []string, styles []lipgloss.Style) string {
	if owner.splitter {
		ch := "│"
		for _, sp := range metrics.Splitters {
			if x >= sp.X && x < sp.X+sp.W && y >= sp.Y && y < sp.Y+sp.H {
				if sp.Axis == layout.AxisHorizontal {
					ch = "─"
				}
				break
			}
		}
		return splitterStyle.Render(strings.Repeat(ch, run))
	}
	if owner.leaf < 0 {
		return strings.Repeat(" ", run)
	}

	leaf := metrics.Leaves[owner.leaf]
	style := styles[owner.leaf]

	// Draw the label on the leaf's first row, left-aligned inside the pane.
	if y == leaf.Y {
		label := labels[owner.leaf]
		start := x - leaf.X
		segment := sliceCells(label, start, run)
		if segment != "" {
			pad := run - runewidth.StringWidth(segment)
			if pad < 0 {
				pad = 0
			}
			return style.Render(labelStyle.Inherit(style).Render(segment) + strings.Repeat(" ", pad))
		}
	}
	return style.Render(strings.Repeat(" ", run))
}

// sliceCells returns the part of s covering display columns [start, start+width).
func sliceCells(s string, start, width int) string {
	if start > 0 {
		total := runewidth.StringWidth(s)
		if start >= total {
			return ""
		}
		s = runewidth.TruncateLeft(s, start, "")
	}
	return runewidth.Truncate(s, width, "")
}

func leafLabel(leaf layout.LeafPlacement, selected bool) string {
	name := icons.FormatPanel(leaf.Panel)
	if selected {
		return fmt.Sprintf(" [%s] %dx%d ", name, leaf.W, leaf.H)
	}
	return fmt.Sprintf(" %s %dx%d ", name, leaf.W, leaf.H)
}

// leafStyle derives a background tint from the panel kind so each panel
// type reads distinctly in the preview.
func leafStyle(panel layout.PanelKind, selected bool) lipgloss.Style {
	hue := float64(panel.Code()) * 29.0
	value := 0.25
	if selected {
		value = 0.45
	}
	c := colorful.Hsv(hue, 0.45, value)
	fg := colorful.Hsv(hue, 0.2, 0.9)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg.Hex()))
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}
