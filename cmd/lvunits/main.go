// SPDX-License-Identifier: MIT

// Command lvunits generates, inspects and benchmarks storage snapshots.
//
// Usage:
//
//	lvunits gen --rows 1000 --cols 1000 --density 0.01 --kind sparse m.lvu
//	lvunits inspect m.lvu
//	lvunits bench --rows 2048 --cols 2048 --workers 8
//
// Every flag can also be set through LVUNITS_<FLAG> (dashes become
// underscores) or a YAML file passed with --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvunits",
		Short:         "Dense/sparse storage tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addPersistentFlags(root)
	root.AddCommand(newBenchCmd(), newGenCmd(), newInspectCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
