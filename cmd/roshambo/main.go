package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     Config
	logger  zerolog.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "roshambo",
		Short:         "Escrowed commit-reveal rock/paper/scissors against a local in-memory host",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = loadConfig(cfgPath)
			if err != nil {
				return err
			}
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "TOML config file")
	root.AddCommand(demoCmd(), commitCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
