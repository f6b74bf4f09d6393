package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/crabsay/crabsay/pkg/say"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// defaultWidth is the wrap width used when neither the --width flag nor
// the config file supplies one. Matches the classic cowsay default.
const defaultWidth = 40

// errNoInput is returned when there are no arguments and stdin is an
// interactive terminal, so there is nothing to say.
var errNoInput = errors.New("no message: pass text as arguments or pipe it on stdin")

// Execute runs the crabsay CLI and returns an error if the command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible via loggerFromContext.
func Execute(ctx context.Context) error {
	cfg, err := loadConfig(configPath())
	if err != nil {
		printError("%v", err)
		return err
	}

	root := newRootCmd(cfg)

	err = root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%v", err)
		if errors.Is(err, errNoInput) {
			printDetail("try: crabsay hello world")
			printDetail("or:  fortune | crabsay")
		}
	}
	return err
}

// newRootCmd builds the root command. cfg supplies defaults that flags can
// override.
func newRootCmd(cfg Config) *cobra.Command {
	var (
		verbose  bool
		width    int
		toStderr bool
	)

	root := &cobra.Command{
		Use:           "crabsay [message...]",
		Short:         "crabsay prints a message in a speech bubble with an ASCII mascot",
		Long:          `Crabsay wraps a message to a maximum display width, frames it in an ASCII speech bubble, and prints it followed by a mascot. The message is taken from the arguments, or from stdin when none are given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			message, err := readMessage(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("width") && cfg.Width > 0 {
				width = cfg.Width
			}
			logger.Debugf("Wrapping %d bytes at width %d", len(message), width)

			out := cmd.OutOrStdout()
			if toStderr {
				out = cmd.ErrOrStderr()
			}
			return say.Say(message, width, out)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("crabsay %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().IntVarP(&width, "width", "w", defaultWidth, "maximum bubble width in display columns")
	root.Flags().BoolVar(&toStderr, "stderr", false, "write the bubble to stderr instead of stdout")

	return root
}

// readMessage assembles the message to say. Arguments win and are joined
// with single spaces; otherwise stdin is read in full. When stdin is an
// interactive terminal and there are no arguments, errNoInput is returned
// instead of blocking on a read.
func readMessage(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "", errNoInput
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
