// SPDX-License-Identifier: MIT

package main

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvunits/storage"
)

// randomStorage fills a rows×cols storage so that roughly density of the
// cells are non-zero, drawn uniformly from [-1, 1) without zero.
func randomStorage(cfg config, kind storage.Kind) (storage.Storage, error) {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	flat := make([]float32, cfg.Rows*cfg.Cols)
	for i := range flat {
		if rng.Float64() >= cfg.Density {
			continue
		}
		v := rng.Float32()*2 - 1
		if v == 0 {
			v = 1
		}
		flat[i] = v
	}

	if kind == storage.KindSparse {
		return storage.NewSparseFromDense(flat, cfg.Rows, cfg.Cols, cfg.storageOptions()...)
	}

	return storage.NewDense(flat, cfg.Rows, cfg.Cols, cfg.storageOptions()...)
}
