// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
	"github.com/katalvlaran/lvunits/value"
)

// benchOp is one timed in-place operation on a mutable matrix.
type benchOp struct {
	name string
	run  func(w *value.MutableMatrix[quantity.Dimensionless], other *value.Matrix[quantity.Dimensionless]) error
}

var benchOps = []benchOp{
	{"IncrementBy", func(w *value.MutableMatrix[quantity.Dimensionless], o *value.Matrix[quantity.Dimensionless]) error {
		return w.IncrementBy(o)
	}},
	{"DecrementBy", func(w *value.MutableMatrix[quantity.Dimensionless], o *value.Matrix[quantity.Dimensionless]) error {
		return w.DecrementBy(o)
	}},
	{"MultiplyBy", func(w *value.MutableMatrix[quantity.Dimensionless], o *value.Matrix[quantity.Dimensionless]) error {
		return w.MultiplyBy(o)
	}},
	{"DivideBy", func(w *value.MutableMatrix[quantity.Dimensionless], o *value.Matrix[quantity.Dimensionless]) error {
		return w.DivideBy(o)
	}},
	{"MultiplyByScalar", func(w *value.MutableMatrix[quantity.Dimensionless], _ *value.Matrix[quantity.Dimensionless]) error {
		w.MultiplyByScalar(0.5)
		return nil
	}},
	{"Round", func(w *value.MutableMatrix[quantity.Dimensionless], _ *value.Matrix[quantity.Dimensionless]) error {
		w.Round()
		return nil
	}},
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the element-wise operators on random dense and sparse storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runBench(cmd, cfg, log)
		},
	}
	addShapeFlags(cmd)
	cmd.Flags().Int(keyRounds, 3, "repetitions per operator")

	return cmd
}

func runBench(cmd *cobra.Command, cfg config, log *zap.Logger) error {
	ctx := cmd.Context()
	for _, kind := range []storage.Kind{storage.KindDense, storage.KindSparse} {
		a, err := randomStorage(cfg, kind)
		if err != nil {
			return err
		}
		cfg.Seed++
		b, err := randomStorage(cfg, kind)
		if err != nil {
			return err
		}
		base := value.MatrixFromStorage[quantity.Dimensionless](a)
		other := value.MatrixFromStorage[quantity.Dimensionless](b)
		klog := log.With(zap.Stringer("kind", kind), zap.Int("rows", cfg.Rows), zap.Int("cols", cfg.Cols))

		for _, op := range benchOps {
			var total time.Duration
			for r := 0; r < cfg.Rounds; r++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				w := base.Mutable() // the first write pays the copy
				start := time.Now()
				if err := op.run(w, other); err != nil {
					return err
				}
				total += time.Since(start)
			}
			klog.Info("bench",
				zap.String("op", op.name),
				zap.Int("rounds", cfg.Rounds),
				zap.Duration("total", total),
				zap.Duration("mean", mean(total, cfg.Rounds)),
			)
		}
	}

	return nil
}

func mean(total time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}

	return total / time.Duration(n)
}
