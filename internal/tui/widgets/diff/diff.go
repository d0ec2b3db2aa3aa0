package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"uricodec/internal/tui/state"
)

var (
	delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
	addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
	faint   = lipgloss.NewStyle().Faint(true)

	visible = strings.NewReplacer("\n", "⏎", "\r", "␍")
)

// Inspector shows which runs of the decoded text were escaped, as a
// character-level diff from the decoded pane to the encoded pane.
type Inspector struct {
	noColor bool
}

func NewInspector(noColor bool) Inspector { return Inspector{noColor: noColor} }

// View renders a two-line diff: "-" carries the decoded text with escaped runs
// highlighted, "+" carries the encoded text with the escape sequences
// highlighted. Without color the runs are bracketed as [-x-] and {+%XX+}.
// Line breaks in the decoded text show as ⏎ and ␍ so each side stays on one line.
func (in Inspector) View(s state.UIState, decoded, encoded string) string {
	if decoded == encoded {
		return "No escapes\n"
	}
	d := dmp.New()
	diffs := d.DiffMain(decoded, encoded, false)
	d.DiffCleanupSemantic(diffs)

	var del, add strings.Builder
	for _, df := range diffs {
		text := visible.Replace(df.Text)
		switch df.Type {
		case dmp.DiffDelete:
			del.WriteString(in.mark(text, "[-", "-]", delChar))
		case dmp.DiffInsert:
			add.WriteString(in.mark(text, "{+", "+}", addChar))
		case dmp.DiffEqual:
			del.WriteString(in.plain(text, delLine))
			add.WriteString(in.plain(text, addLine))
		}
	}

	var sb strings.Builder
	sb.WriteString(in.plain("- ", delLine) + in.fit(del.String(), s) + "\n")
	sb.WriteString(in.plain("+ ", addLine) + in.fit(add.String(), s) + "\n")
	return sb.String()
}

func (in Inspector) mark(text, open, close string, st lipgloss.Style) string {
	if in.noColor {
		return open + text + close
	}
	return st.Render(text)
}

func (in Inspector) plain(text string, st lipgloss.Style) string {
	if in.noColor {
		return text
	}
	return st.Render(text)
}

// fit wraps to the available width when Wrap is on; otherwise it clips.
func (in Inspector) fit(line string, s state.UIState) string {
	width := s.Width - 4
	if s.Width <= 0 || width < 10 {
		return line
	}
	if s.Wrap {
		return lipgloss.NewStyle().Width(width).Render(line)
	}
	if lipgloss.Width(line) <= width {
		return line
	}
	if in.noColor {
		return runewidth.Truncate(line, width, "…")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

// Header labels the inspector box.
func (in Inspector) Header() string {
	if in.noColor {
		return "Escapes (decoded -> encoded)"
	}
	return faint.Render("Escapes (decoded → encoded)")
}
