// SPDX-License-Identifier: MIT

// Package quantity defines phantom quantity markers used as type parameters
// by the value package. A Matrix[Length] cannot be added to a Matrix[Mass]:
// the compiler rejects it.
//
// Markers are zero-size and carry only the name of the quantity and its SI
// unit symbol. Scale factors and display units live outside this module.
package quantity

// Quantity names a physical quantity and its SI unit symbol.
type Quantity interface {
	Name() string
	SIUnit() string
}

// Dimensionless is the quantity of pure numbers and ratios.
type Dimensionless struct{}

func (Dimensionless) Name() string   { return "Dimensionless" }
func (Dimensionless) SIUnit() string { return "" }

// Length in meters.
type Length struct{}

func (Length) Name() string   { return "Length" }
func (Length) SIUnit() string { return "m" }

// Mass in kilograms.
type Mass struct{}

func (Mass) Name() string   { return "Mass" }
func (Mass) SIUnit() string { return "kg" }

// Duration in seconds.
type Duration struct{}

func (Duration) Name() string   { return "Duration" }
func (Duration) SIUnit() string { return "s" }

// Temperature in kelvin.
type Temperature struct{}

func (Temperature) Name() string   { return "Temperature" }
func (Temperature) SIUnit() string { return "K" }

// Area in square meters.
type Area struct{}

func (Area) Name() string   { return "Area" }
func (Area) SIUnit() string { return "m2" }

// Speed in meters per second.
type Speed struct{}

func (Speed) Name() string   { return "Speed" }
func (Speed) SIUnit() string { return "m/s" }

// Force in newtons.
type Force struct{}

func (Force) Name() string   { return "Force" }
func (Force) SIUnit() string { return "N" }

// Energy in joules.
type Energy struct{}

func (Energy) Name() string   { return "Energy" }
func (Energy) SIUnit() string { return "J" }

// Of returns the zero marker of Q, for reading its name and unit.
func Of[Q Quantity]() Q {
	var q Q
	return q
}

// Compile-time assertions.
var (
	_ Quantity = Dimensionless{}
	_ Quantity = Length{}
	_ Quantity = Mass{}
	_ Quantity = Duration{}
	_ Quantity = Temperature{}
	_ Quantity = Area{}
	_ Quantity = Speed{}
	_ Quantity = Force{}
	_ Quantity = Energy{}
)
