// Package cli wires the sysview command line to the config loader and the UI.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sysview/internal/config"
	"github.com/Dicklesworthstone/sysview/internal/errors"
	"github.com/Dicklesworthstone/sysview/internal/logger"
	"github.com/Dicklesworthstone/sysview/internal/ui"
)

var version = "dev"

// SetVersion records the build version shown by --version.
func SetVersion(v string) { version = v }

// runner starts either the one-shot printer or the TUI. Swapped in tests.
type runner struct {
	once func(cfg config.Config, log logger.Logger) (string, error)
	tui  func(cfg config.Config, log logger.Logger) error
}

var defaultRunner = runner{once: ui.PrintOnce, tui: ui.RunTUI}

// NewRootCmd builds the sysview command writing one-shot output to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	return newRootCmd(out, defaultRunner)
}

func newRootCmd(out io.Writer, r runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sysview",
		Short: "Terminal summary of CPU, memory, paging, disk and network activity",
		Long: `Show system-wide resource utilization as five aligned rows
(CPU, Mem, VM, I/O, Iface), refreshed every interval.

Examples:
  sysview
  sysview --interval 500ms
  sysview --once`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			l := logger.New("[sysview]", cfg.Debug)

			if cfg.Once {
				rows, err := r.once(cfg, l)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, rows)
				return err
			}

			// The TUI owns the terminal; logs go to a file or nowhere.
			defer log.SetOutput(os.Stderr)
			if cfg.LogFile != "" {
				f, err := tea.LogToFile(cfg.LogFile, "sysview")
				if err != nil {
					return err
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}
			return r.tui(cfg, l)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// Exit codes by failure kind.
const (
	exitFailure = 1
	exitConfig  = 2
	exitSample  = 3
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, defaultRunner))
}

// run executes the command with args and returns the process exit code.
func run(args []string, out, errOut io.Writer, r runner) int {
	cmd := newRootCmd(out, r)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	// Structured errors end in a newline, cobra's own errors do not.
	fmt.Fprintln(errOut, strings.TrimRight(err.Error(), "\n"))
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case errors.IsCode(err, errors.ErrConfig):
		return exitConfig
	case errors.IsCode(err, errors.ErrSample):
		return exitSample
	default:
		return exitFailure
	}
}
