// SPDX-License-Identifier: MIT

package value

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/storage"
)

// MatrixStorage_TestOnly exposes the backing storage for identity checks.
func MatrixStorage_TestOnly[Q quantity.Quantity](m MatrixOperand[Q]) storage.Storage {
	return m.storageOf()
}

// VectorStorage_TestOnly exposes the backing storage for identity checks.
func VectorStorage_TestOnly[Q quantity.Quantity](v VectorOperand[Q]) storage.Storage {
	return v.storageOf()
}
