package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/practice/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// headingStyle renders section titles; it degrades to plain text when the
// output is not a terminal.
var headingStyle = lipgloss.NewStyle().Bold(true)

// NewRootCmd builds a fresh command tree. Tests call it once per case so
// flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	var verbosity int

	root := &cobra.Command{
		Use:   "practice",
		Short: "Run small algorithm exercises from the console",
		Long: `practice runs each exercise of this module with the classic demo input,
or with your own input given as arguments and flags.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(cmd.ErrOrStderr(), verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	root.AddCommand(
		newConsecutiveCmd(),
		newAnagramCmd(),
		newWordPatternCmd(),
		newMinMaxCmd(),
		newInterestCmd(),
		newShapesCmd(),
		newAllCmd(),
	)

	return root
}
