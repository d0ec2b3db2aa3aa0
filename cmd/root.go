package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"uricodec/internal/codec"
	"uricodec/internal/config"
	"uricodec/internal/logging"
	appTUI "uricodec/internal/tui"
	"uricodec/internal/tui/state"
)

var (
	configPath  string
	modeFlag    string
	colorFlag   string
	noColor     bool
	logFile     string
	debugMode   bool
	printOnExit bool
	fromEncoded bool

	version = "dev"
)

// SetVersion sets version information from ldflags.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "uricodec [text...]",
	Short: "Two-pane percent-encoding editor",
	Long: `uricodec converts text to and from percent-encoded form.

Run without a subcommand to open the editor: type in the Decoded pane to see
the encoded form, or in the Encoded pane to see it decoded. Use encode/decode
for one-shot conversions in scripts.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runEditor,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultPath+" if present)")
	pf.StringVarP(&modeFlag, "mode", "m", "", "Encoding mode: component|uri (overrides config)")
	pf.StringVar(&colorFlag, "color-mode", "", "Color mode: auto|dark|light (overrides config)")
	pf.BoolVar(&noColor, "no-color", false, "Disable colors (also honors NO_COLOR)")
	pf.BoolVar(&debugMode, "debug", false, "Enable debug logging")

	f := rootCmd.Flags()
	f.StringVar(&logFile, "log-file", "", "Editor log file (overrides config)")
	f.BoolVarP(&printOnExit, "print", "p", false, "Print the encoded pane to stdout on exit")
	f.BoolVarP(&fromEncoded, "encoded", "e", false, "Treat initial text as encoded and start in the Encoded pane")

	rootCmd.AddCommand(encodeCmd, decodeCmd, modesCmd, versionCmd)
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("uricodec {{.Version}}\n")
	return rootCmd.Execute()
}

// loadConfig applies flag overrides on top of file and environment settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("mode") {
		c.Mode = modeFlag
	}
	if cmd.Flags().Changed("color-mode") {
		c.ColorMode = colorFlag
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		c.LogFile = logFile
	}
	if noColor {
		c.NoColor = true
	}
	if debugMode {
		c.LogLevel = "debug"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func logOptions(c *config.Config) logging.Options {
	return logging.Options{Level: c.LogLevel, JSON: c.LogJSON}
}

func runEditor(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	color, err := state.ParseColorMode(c.ColorMode)
	if err != nil {
		return err
	}

	log, closer, err := logging.OpenFile(c.LogFile, logOptions(c))
	if err != nil {
		// The editor still works without a log file.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		log, closer = logging.NewNop(), io.NopCloser(nil)
	}
	defer closer.Close()

	opts := appTUI.Options{
		Mode:    c.Codec(),
		Color:   color,
		NoColor: c.NoColor,
		Wrap:    c.Wrap,
		Initial: strings.Join(args, " "),
		Logger:  log,
	}
	if fromEncoded {
		opts.InitialPane = state.EncodedPane
	}
	log.Info("editor started", "mode", opts.Mode.String(), "color", color.String(), "version", version)

	res, err := appTUI.Run(opts)
	if err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}
	log.Info("editor closed", "mode", res.Mode.String(), "decoded_len", len(res.Decoded), "encoded_len", len(res.Encoded))
	if printOnExit {
		fmt.Fprintln(cmd.OutOrStdout(), res.Encoded)
	}
	return nil
}

// cliLogger is the stderr logger for one-shot commands.
func cliLogger(c *config.Config) *slog.Logger {
	if c.LogLevel == "info" {
		// keep scripts quiet unless asked
		return logging.Stderr(logging.Options{Level: "warn", JSON: c.LogJSON})
	}
	return logging.Stderr(logOptions(c))
}

// modeFor resolves the mode for a one-shot command.
func modeFor(cmd *cobra.Command) (codec.Mode, *config.Config, error) {
	c, err := loadConfig(cmd)
	if err != nil {
		return codec.Component, nil, fmt.Errorf("error loading config: %w", err)
	}
	return c.Codec(), c, nil
}
