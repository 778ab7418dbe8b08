package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcore/logging"
	"github.com/katalvlaran/mcore/scenario"
)

var errChecksFailed = errors.New("mcore: checks failed")

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run scenario suites (default: all)",
		Long: "Run the named scenario suites in order. Available suites: " +
			strings.Join(scenario.Names(), ", ") + ".",
		ValidArgs: scenario.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logging.Open(cfg.Log.Path, cfg.LogOptions()...)
			if err != nil {
				return err
			}
			defer log.Close()

			res, err := scenario.Run(cmd.Context(), args, cfg, log)
			out := cmd.OutOrStdout()
			for _, s := range res.Suites {
				fmt.Fprintln(out, s)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, res.Total)
			if !res.Total.OK() {
				return fmt.Errorf("%w: %d of %d, see %s",
					errChecksFailed, res.Total.Failed, res.Total.Total(), cfg.Log.Path)
			}

			return nil
		},
	}
}
