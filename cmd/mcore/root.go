package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcore/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	json       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "mcore",
		Short: "Exercise the mcore containers",
		Long: `mcore drives the hash map, stack and trie containers and the GUID
generator through their acceptance scenarios, logging one line per check
to a run log.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (yaml, toml or json)")
	pf.BoolVar(&opts.json, "json", false, "write the run log as JSON lines")
	config.RegisterFlags(pf)

	root.AddCommand(newRunCmd(opts), newGUIDCmd(), newVersionCmd())

	return root
}

// loadConfig resolves the configuration for cmd from the config file, the
// environment and its flags.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if o.json {
		cfg.Log.Format = "json"
	}

	return cfg, nil
}
