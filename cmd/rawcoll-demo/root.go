package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/rawcoll"
)

// newRootCmd wires flags, configuration and the demo run together.
func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "rawcoll-demo",
		Short:         "Exercise the rawcoll linked list",
		Version:       rawcoll.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			logger := log.New(io.Discard, "", 0)
			if cfg.Verbose {
				logger = log.New(cmd.ErrOrStderr(), "rawcoll-demo: ", 0)
			}
			return run(cfg, cmd.OutOrStdout(), logger)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "YAML config file")
	f.IntSlice(flagPush, defaultPush, "values to push, in order")
	f.Int(flagInsertAt, 0, "position of the inserted value")
	f.Int(flagInsert, 9, "value to insert")
	f.Bool(flagRemoveFront, true, "remove the head after inserting")
	f.String(flagOutput, outputText, "output format: text or yaml")
	f.Int(flagChunkSize, 0, "list nodes allocated per chunk (0 = default)")
	f.BoolP(flagVerbose, "v", false, "log each operation to stderr")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rawcoll version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rawcoll", rawcoll.Version)
		},
	}
}
