package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uricodec/internal/codec"
	"uricodec/internal/logging"
	"uricodec/internal/tui/state"
	"uricodec/internal/tui/util"
	"uricodec/internal/tui/widgets/diff"
	"uricodec/internal/tui/widgets/editor"
	overlay "uricodec/internal/tui/widgets/helpoverlay"
	"uricodec/internal/tui/widgets/statusbar"
	"uricodec/internal/tui/widgets/tagchips"
)

// Options configures the editor.
type Options struct {
	Mode    codec.Mode
	Color   state.ColorMode
	NoColor bool
	Wrap    bool

	// Initial text placed in InitialPane; the other pane is derived from it.
	Initial     string
	InitialPane state.Pane

	Logger *slog.Logger
	// Copy writes to the system clipboard. Defaults to atotto/clipboard.
	Copy func(string) error
}

// Result is the pane contents when the editor exits.
type Result struct {
	Decoded string
	Encoded string
	Mode    codec.Mode
}

// Run shows the two-pane editor and blocks until the user quits.
func Run(opts Options) (Result, error) {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return fm.result(), nil
}

// ===== Model =====

const minCol = 24

type model struct {
	ui state.UIState

	decoded textarea.Model
	encoded textarea.Model

	keys  keyMap
	help  help.Model
	theme *util.Theme

	status    statusbar.StatusBar
	overlay   overlay.HelpOverlay
	frame     editor.Editor
	inspector diff.Inspector

	log  *slog.Logger
	clip func(string) error
}

func newPane(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	return ta
}

func newModel(opts Options) model {
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}
	cp := opts.Copy
	if cp == nil {
		cp = clipboard.WriteAll
	}
	theme := util.NewTheme(opts.NoColor)
	noColor := theme.NoColor()

	m := model{
		ui: state.UIState{
			Codec:  opts.Mode,
			Color:  opts.Color,
			Wrap:   opts.Wrap,
			MinCol: minCol,
		},
		decoded:   newPane("Type or paste raw text"),
		encoded:   newPane("Type or paste percent-encoded text"),
		keys:      defaultKeys(),
		help:      help.New(),
		theme:     theme,
		status:    statusbar.NewStatusBar(noColor),
		overlay:   overlay.NewHelpOverlay(),
		frame:     editor.NewEditor(noColor),
		inspector: diff.NewInspector(noColor),
		log:       log,
		clip:      cp,
	}
	theme.Apply(m.ui.Color)

	if opts.Initial != "" {
		m.ui.Focus = opts.InitialPane
		m.pane(opts.InitialPane).SetValue(opts.Initial)
		m.sync(opts.InitialPane)
	}
	m.focus()
	return m
}

func (m model) Init() tea.Cmd { return textarea.Blink }

// Update routes app keys first; everything else goes to the focused pane.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			m.ui = state.ToggleFocus(m.ui)
			cmd := m.focus()
			return m, cmd
		case key.Matches(msg, m.keys.Mode):
			m.ui = state.ToggleCodec(m.ui)
			m.log.Info("mode switched", "mode", m.ui.Codec.String())
			// the focused pane is the source of truth
			m.sync(m.ui.Focus)
			return m, nil
		case key.Matches(msg, m.keys.Color):
			m.ui = state.CycleColor(m.ui)
			dark := m.theme.Apply(m.ui.Color)
			m.log.Debug("color mode", "mode", m.ui.Color.String(), "dark", dark)
			return m, nil
		case key.Matches(msg, m.keys.Inspect):
			m.ui = state.ToggleInspect(m.ui)
			m.layout()
			return m, nil
		case key.Matches(msg, m.keys.Wrap):
			m.ui = state.ToggleWrap(m.ui)
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			m.copyFocused()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.decoded.SetValue("")
			m.encoded.SetValue("")
			m.ui = state.SetNotice(state.Settle(m.ui), "Cleared")
			return m, nil
		}
		if m.ui.Help {
			// keys other than app bindings close the overlay
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		}
	}

	src := m.pane(m.ui.Focus)
	before := src.Value()
	var cmd tea.Cmd
	*src, cmd = src.Update(msg)
	if src.Value() != before {
		m.ui = state.SetNotice(m.ui, "")
		m.sync(m.ui.Focus)
	}
	return m, cmd
}

// sync derives the pane opposite src. A failed decode leaves the target
// untouched and records the error.
func (m *model) sync(src state.Pane) {
	in := m.pane(src).Value()
	out, err := codec.Transform(m.ui.Codec, src.Direction(), in)
	if err != nil {
		m.ui = state.Fail(m.ui, err)
		m.log.Debug("transform failed", "mode", m.ui.Codec.String(), "direction", src.Direction().String(), "error", err)
		return
	}
	m.ui = state.Settle(m.ui)
	m.pane(other(src)).SetValue(out)
}

func (m *model) copyFocused() {
	text := m.pane(m.ui.Focus).Value()
	if err := m.clip(text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		m.ui = state.SetNotice(m.ui, "Copy failed: "+err.Error())
		return
	}
	m.ui = state.SetNotice(m.ui, fmt.Sprintf("Copied %s pane (%d bytes)", m.ui.Focus, len(text)))
}

func (m *model) pane(p state.Pane) *textarea.Model {
	if p == state.EncodedPane {
		return &m.encoded
	}
	return &m.decoded
}

func other(p state.Pane) state.Pane {
	if p == state.EncodedPane {
		return state.DecodedPane
	}
	return state.EncodedPane
}

func (m *model) focus() tea.Cmd {
	m.pane(other(m.ui.Focus)).Blur()
	return m.pane(m.ui.Focus).Focus()
}

// layout sizes the textareas from the window. Rows reserved: title, tags,
// status, footer, and per pane a heading plus two border lines.
func (m *model) layout() {
	if m.ui.Width <= 0 {
		return
	}
	avail := m.ui.Height - 4
	if m.ui.Inspect {
		avail -= 5
	}
	var w, h int
	if m.ui.Stacked {
		w = m.ui.Width - 4
		h = avail/2 - 3
	} else {
		w = m.ui.Width/2 - 4
		h = avail - 3
	}
	if h < 3 {
		h = 3
	}
	if w < 10 {
		w = 10
	}
	for _, p := range []state.Pane{state.DecodedPane, state.EncodedPane} {
		ta := m.pane(p)
		ta.SetWidth(w)
		ta.SetHeight(h)
	}
	m.help.Width = m.ui.Width
}

func (m model) result() Result {
	return Result{Decoded: m.decoded.Value(), Encoded: m.encoded.Value(), Mode: m.ui.Codec}
}

// ===== Views =====

var titleStyle = lipgloss.NewStyle().Bold(true)

func (m model) View() string {
	if m.ui.Help {
		return m.overlay.View(m.ui, m.keys.groups()) + "\n" + m.help.View(m.keys)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("uricodec") + "  " + m.ui.Codec.String() + "\n")

	paneWidth := 0
	if m.ui.Width > 0 {
		paneWidth = m.ui.Width / 2
		if m.ui.Stacked {
			paneWidth = m.ui.Width
		}
	}
	left := m.frame.View(state.DecodedPane.String(), m.decoded.View(), m.ui.Focus == state.DecodedPane, paneWidth)
	right := m.frame.View(state.EncodedPane.String(), m.encoded.View(), m.ui.Focus == state.EncodedPane, paneWidth)
	if m.ui.Stacked {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, left, right))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}
	b.WriteString("\n")

	tags := util.ComputeTags(m.decoded.Value(), m.encoded.Value(), m.ui.Codec, m.ui.Err)
	b.WriteString(tagchips.View(tags, m.theme.NoColor()) + "\n")

	if m.ui.Inspect {
		b.WriteString(m.inspector.Header() + "\n")
		b.WriteString(m.inspector.View(m.ui, m.decoded.Value(), m.encoded.Value()))
	}

	b.WriteString(m.status.View(m.ui) + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
