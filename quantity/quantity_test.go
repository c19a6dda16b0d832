// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/lvunits/quantity"
	"github.com/stretchr/testify/require"
)

func TestMarkers(t *testing.T) {
	cases := []struct {
		q          quantity.Quantity
		name, unit string
	}{
		{quantity.Dimensionless{}, "Dimensionless", ""},
		{quantity.Length{}, "Length", "m"},
		{quantity.Mass{}, "Mass", "kg"},
		{quantity.Duration{}, "Duration", "s"},
		{quantity.Temperature{}, "Temperature", "K"},
		{quantity.Area{}, "Area", "m2"},
		{quantity.Speed{}, "Speed", "m/s"},
		{quantity.Force{}, "Force", "N"},
		{quantity.Energy{}, "Energy", "J"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.name, tc.q.Name())
		require.Equal(t, tc.unit, tc.q.SIUnit())
	}
}

func TestOf(t *testing.T) {
	require.Equal(t, "N", quantity.Of[quantity.Force]().SIUnit())
}
