package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"uricodec/internal/codec"
)

var noNewline bool

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Percent-encode text (args joined by spaces, or stdin)",
	Example: `  uricodec encode 'a/b?c'          # a%2Fb%3Fc
  uricodec encode -m uri 'a b/c'   # a%20b/c
  echo -n café | uricodec encode   # caf%C3%A9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, codec.Encode, args)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "Decode percent-encoded text (args joined by spaces, or stdin)",
	Example: `  uricodec decode caf%C3%A9         # café
  uricodec decode -m uri a%2Fb%20c  # a%2Fb c`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, codec.Decode, args)
	},
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not print the trailing newline")
	}
}

func runTransform(cmd *cobra.Command, dir codec.Direction, args []string) error {
	mode, c, err := modeFor(cmd)
	if err != nil {
		return err
	}
	log := cliLogger(c)

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	out, err := codec.Transform(mode, dir, input)
	if err != nil {
		log.Debug("transform failed", "mode", mode.String(), "direction", dir.String(), "error", err)
		return fmt.Errorf("%s: %w", dir, err)
	}
	log.Debug("transformed", "mode", mode.String(), "direction", dir.String(), "in", len(input), "out", len(out))

	w := cmd.OutOrStdout()
	if noNewline {
		_, err = io.WriteString(w, out)
	} else {
		_, err = fmt.Fprintln(w, out)
	}
	return err
}

// readInput joins args, or reads all of r when there are none. A single
// trailing newline from piped input is dropped.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := r.(*os.File); ok && isTerminal(f) {
		return "", fmt.Errorf("no input: pass text as arguments or pipe it on stdin")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := string(data)
	if strings.HasSuffix(s, "\r\n") {
		return strings.TrimSuffix(s, "\r\n"), nil
	}
	return strings.TrimSuffix(s, "\n"), nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
