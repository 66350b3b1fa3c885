// Package commands holds the callsdk CLI command tree.
package commands

import (
	"fmt"

	"github.com/danmuck/callsdk/internal/catalog"
	"github.com/danmuck/callsdk/internal/registry"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the callsdk root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "callsdk",
		Short:         "Inspect and exercise the call SDK record catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newRecordsCmd(),
		newDescribeCmd(),
		newSchemaCmd(),
		newDecodeCmd(),
		newExampleCmd(),
		newServeCmd(),
	)
	return cmd
}

func lookupEntry(name string) (registry.Entry, error) {
	entry, ok := catalog.Registry().Entry(name)
	if !ok {
		return registry.Entry{}, fmt.Errorf("%w: %q (run `callsdk records` for the list)", registry.ErrNotFound, name)
	}
	return entry, nil
}
