package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

const programName = "clubs"

var globalFlags = struct {
	env   string
	debug bool
}{}

// setupLogger initializes the zerolog global logger early so config.Load can use it.
func setupLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if globalFlags.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if _, err := maxprocs.Set(maxprocs.Logger(log.Printf)); err != nil {
		log.Error().Err(err).Str("module", "cmd").Msg("maxprocs")
	}
}

func applyLogLevel(level string) {
	if globalFlags.debug || level == "" {
		return
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("module", "cmd").Str("level", level).Msg("unknown log level, keeping info")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           programName,
		Short:         "Activity signup service for the school club directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&globalFlags.env, "env", "", "config environment (config/config.<env>.yaml), defaults to $CONFIG_ENV or dev")
	root.PersistentFlags().BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")

	root.AddCommand(serveCommand(), seedCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Str("module", "cmd").Msg("exit")
		os.Exit(1)
	}
}
