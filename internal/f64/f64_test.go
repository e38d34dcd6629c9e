package f64

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKernels(t *testing.T) {
	x := []float64{1, -2, 3}
	assert.Equal(t, 2.0, Sum(x))
	assert.Equal(t, 1.0*4+(-2)*5+3*6, DotUnitary(x, []float64{4, 5, 6}))

	ClampNegative(x)
	assert.Equal(t, []float64{1, 0, 3}, x)

	AddConst(1, x)
	ScalUnitary(2, x)
	assert.Equal(t, []float64{4, 2, 8}, x)
}
