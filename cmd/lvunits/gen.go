// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvunits/snapshot"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <file>",
		Short: "Write a random storage snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			kind, err := parseKind(cfg.Kind)
			if err != nil {
				return err
			}
			s, err := randomStorage(cfg, kind)
			if err != nil {
				return err
			}
			if err := snapshot.Write(args[0], s); err != nil {
				return err
			}
			log.Info("snapshot written",
				zap.String("path", args[0]),
				zap.Stringer("kind", s.Kind()),
				zap.Int("rows", s.Rows()),
				zap.Int("cols", s.Cols()),
				zap.Int("cardinality", s.Cardinality()),
			)

			return nil
		},
	}
	addShapeFlags(cmd)
	cmd.Flags().String(keyKind, "sparse", "storage kind (dense or sparse)")

	return cmd
}
