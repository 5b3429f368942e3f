package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"example.com/scoreboard/internal/app"
	"example.com/scoreboard/internal/config"
	"example.com/scoreboard/internal/replay"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "scoreboard",
		Short:        "Live match scoreboard",
		Long:         `Keeps an in-memory board of live matches and ranks them by total score.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
		}
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	root.PersistentFlags().String("log-format", "text", "log format: text|json")
	root.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error")
	_ = v.BindPFlag("log.format", root.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newReplayCmd(v))
	return root
}

func newReplayCmd(v *viper.Viper) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Apply a YAML script of board operations and print the summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log := app.NewLogger(cfg, cmd.ErrOrStderr())

			script, err := replay.Load(args[0])
			if err != nil {
				return err
			}

			a, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(cmd.Context()); err != nil {
					log.Error("close", "err", err)
				}
			}()

			outcomes, runErr := a.Replay(cmd.Context(), script)
			summary := a.Board().Summary()

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(newReport(script.Name, outcomes, summary)); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
			} else {
				renderRejected(out, replay.Failed(outcomes))
				renderSummary(out, summary)
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().Bool("stop-on-error", false, "stop at the first rejected step")
	_ = v.BindPFlag("replay.stop_on_error", cmd.Flags().Lookup("stop-on-error"))
	return cmd
}
