package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"uricodec/internal/codec"
	"uricodec/internal/config"
	"uricodec/internal/tui/util"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Describe the two encoding modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		md := modesMarkdown()
		out := cmd.OutOrStdout()
		f, isFile := out.(*os.File)
		if util.NoColor(c.NoColor) || !isFile || !isTerminal(f) {
			_, err = fmt.Fprint(out, md)
			return err
		}
		rendered, err := renderMarkdown(md, c)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

const sample = "a/b?c=d é"

func modesMarkdown() string {
	var b strings.Builder
	b.WriteString("# Encoding modes\n\n")
	b.WriteString("| Mode | Flag | Left unescaped | `" + sample + "` encodes to |\n")
	b.WriteString("|---|---|---|---|\n")
	rows := []struct {
		mode codec.Mode
		flag string
	}{
		{codec.Component, "component"},
		{codec.FullURI, "uri"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | `%s` | `%s` | `%s` |\n",
			r.mode, r.flag, spaced(codec.Unescaped(r.mode)), codec.EncodeString(r.mode, sample))
	}
	b.WriteString("\n## Decoding\n\n")
	b.WriteString("- `%XX` escapes are read as UTF-8 bytes; hex digits may be either case.\n")
	b.WriteString("- In `uri` mode, escapes of `; / ? : @ & = + $ , #` stay escaped.\n")
	b.WriteString("- A `%` without two hex digits, or bytes that are not valid UTF-8, fail with a malformed escape error.\n")
	return b.String()
}

// spaced collapses the alphanumerics and separates the rest for readability.
func spaced(set string) string {
	const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	rest := strings.TrimPrefix(set, alnum)
	parts := []string{"A-Z a-z 0-9"}
	for _, r := range rest {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}

func renderMarkdown(md string, c *config.Config) (string, error) {
	style := glamour.WithAutoStyle()
	switch strings.ToLower(c.ColorMode) {
	case "dark":
		style = glamour.WithStandardStyle("dark")
	case "light":
		style = glamour.WithStandardStyle("light")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
