package coords

import (
	"math"

	"github.com/andrew-torda/matrix"
)

// Xyz is one set of coordinates.
type Xyz struct{ X, Y, Z float32 }

var nan32 = float32(math.NaN())

// BrokenXyz is what we use for a residue with no coordinates.
var BrokenXyz = Xyz{nan32, nan32, nan32}

// Ok is false if any of the coordinates is missing.
func (xyz Xyz) Ok() bool {
	return !math.IsNaN(float64(xyz.X)) && !math.IsNaN(float64(xyz.Y)) && !math.IsNaN(float64(xyz.Z))
}

// At returns row i of an n x 3 coordinate matrix. Off the end, or with
// too few columns, we get BrokenXyz.
func At(m *matrix.FMatrix2d, i int) Xyz {
	if m == nil || i < 0 || i >= len(m.Mat) || len(m.Mat[i]) < 3 {
		return BrokenXyz
	}
	r := m.Mat[i]
	return Xyz{r[0], r[1], r[2]}
}

// FromXyz builds a coordinate matrix. It is mostly for building
// predictions in tests and small tools.
func FromXyz(xyz []Xyz) *matrix.FMatrix2d {
	m := matrix.NewFMatrix2d(len(xyz), 3)
	for i, c := range xyz {
		m.Mat[i][0], m.Mat[i][1], m.Mat[i][2] = c.X, c.Y, c.Z
	}
	return m
}
