package domain

// Gauge is knitting density: stitches and rows per inch. Both must be
// strictly positive. Grounded on the Python original's utilities.Gauge.
type Gauge struct {
	StitchesPerInch float64
	RowsPerInch     float64
}

// NewGauge validates both densities are strictly positive.
func NewGauge(stitchesPerInch, rowsPerInch float64) (Gauge, error) {
	if stitchesPerInch <= 0 {
		return Gauge{}, &ValidationError{Type: "Gauge", Field: "stitches_per_inch", Message: "must be > 0"}
	}
	if rowsPerInch <= 0 {
		return Gauge{}, &ValidationError{Type: "Gauge", Field: "rows_per_inch", Message: "must be > 0"}
	}
	return Gauge{StitchesPerInch: stitchesPerInch, RowsPerInch: rowsPerInch}, nil
}

// mmPerInch is the fixed conversion constant the original checker uses
// for every physical<->stitch conversion.
const mmPerInch = 25.4

// StitchCountToMM converts a stitch count to a physical length in mm at
// this gauge.
func (g Gauge) StitchCountToMM(count float64) float64 {
	return (count / g.StitchesPerInch) * mmPerInch
}

// RowCountToMM converts a row count to a physical length in mm at this
// gauge.
func (g Gauge) RowCountToMM(count float64) float64 {
	return (count / g.RowsPerInch) * mmPerInch
}

// StitchMotif is a repeating stitch pattern, carried opaquely through the
// checker. Grounded on the Python original's schemas.StitchMotif.
type StitchMotif struct {
	Name         string
	StitchRepeat int
	RowRepeat    int
}

// YarnSpec is yarn metadata, carried opaquely through the checker.
// Grounded on the Python original's schemas.YarnSpec.
type YarnSpec struct {
	Weight       string
	Fiber        string
	NeedleSizeMM float64
}

// Constraint bundles the knitting-physics inputs that flow into Stitch
// Fillers and the checker. The checker itself consumes only Gauge and
// PhysicalToleranceMM (per spec.md §3); the rest is opaque pass-through,
// but typed — the original gives these fields a fixed shape, so a typed
// struct is more useful to a Go caller than an untyped map.
type Constraint struct {
	Gauge               Gauge
	StitchMotif         StitchMotif
	HardConstraints     []int
	YarnSpec            YarnSpec
	PhysicalToleranceMM float64
}
