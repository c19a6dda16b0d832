// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/snapshot"
	"github.com/katalvlaran/lvunits/value"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a storage snapshot",
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

			s, err := snapshot.Read(args[0], cfg.storageOptions()...)
			if err != nil {
				return err
			}
			m := value.MatrixFromStorage[quantity.Dimensionless](s)

			fields := []zap.Field{
				zap.String("path", args[0]),
				zap.Stringer("kind", s.Kind()),
				zap.Int("rows", m.Rows()),
				zap.Int("cols", m.Cols()),
				zap.Int("cardinality", m.Cardinality()),
				zap.Float32("zsum", m.ZSum()),
			}
			if m.IsSparse() {
				fields = append(fields, zap.Int("nnz", s.ToSparse().NNZ()))
			}
			det, err := m.Determinant()
			switch {
			case err == nil:
				fields = append(fields, zap.Float64("determinant", det))
			case !errors.Is(err, value.ErrNonSquare):
				return err
			}
			log.Info("snapshot", fields...)

			return nil
		},
	}
}
