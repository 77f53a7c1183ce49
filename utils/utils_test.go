package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Basic construction and element access
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		r, c := A.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
		assert.Equal(t, 6., A.At(1, 2))
		assert.Equal(t, 6., A.Max())
		assert.Equal(t, 1., A.Min())
		assert.Equal(t, 21., A.Sum())
		assert.InDeltaf(t, 3.5, A.Avg(), 1.e-12, "")
	}
	// Chained in-place operations act on the receiver
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A.Scale(2).AddScalar(1)
		assert.Equal(t, 3., A.At(0, 0))
		assert.Equal(t, 9., A.At(1, 1))
		A.Apply(func(v float64) float64 { return v * v })
		assert.Equal(t, 81., A.At(1, 1))
	}
	// Copy is independent of the source
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := A.Copy()
		B.Scale(10)
		assert.Equal(t, 1., A.At(0, 0))
		assert.Equal(t, 10., B.At(0, 0))
	}
	// Matrix multiply
	{
		A := NewMatrix(2, 3, []float64{
			1, 0, 0,
			0, 1, 0,
		})
		B := NewMatrix(3, 2, []float64{
			1, 2,
			3, 4,
			5, 6,
		})
		C := A.Mul(B)
		assert.Equal(t, 1., C.At(0, 0))
		assert.Equal(t, 4., C.At(1, 1))
	}
	// Matrix-vector multiply
	{
		A := NewMatrix(2, 3, []float64{
			1, 1, 1,
			2, 0, 1,
		})
		x := NewVector(3, []float64{1, 2, 3})
		y := A.MulVec(x)
		assert.Equal(t, 6., y.At(0))
		assert.Equal(t, 5., y.At(1))
	}
	// Row and column extraction
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, A.Row(1).RawData())
		assert.Equal(t, []float64{3, 6}, A.Col(2).RawData())
	}
}

func TestVector(t *testing.T) {
	{
		v := NewVectorConstant(4, 2.5)
		assert.Equal(t, 4, v.Len())
		assert.Equal(t, 10., v.Dot(NewVectorConstant(4, 1)))
	}
	{
		v := NewVector(3, []float64{1, -2, 3})
		assert.Equal(t, 3., v.Max())
		assert.Equal(t, -2., v.Min())
		v.Scale(2).AddScalar(1)
		assert.Equal(t, []float64{3, -3, 7}, v.RawData())
		v.Apply(math.Abs)
		assert.Equal(t, []float64{3, 3, 7}, v.RawData())
	}
	{
		a := NewVector(2, []float64{1, 2})
		b := NewVector(2, []float64{10, 20})
		a.Add(b)
		assert.Equal(t, []float64{11, 22}, a.RawData())
	}
}

func TestDOK(t *testing.T) {
	D := NewDOK(4, 4)
	assert.Equal(t, 0, D.NNZ())
	D.Set(1, 2, 3500.)
	D.Set(3, 0, 2800.)
	assert.Equal(t, 2, D.NNZ())
	assert.Equal(t, 3500., D.At(1, 2))
	assert.Equal(t, 0., D.At(0, 0))
	var sum float64
	D.DoNonZero(func(i, j int, v float64) {
		sum += v
	})
	assert.Equal(t, 6300., sum)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0., Clamp(-1, 0, 1))
	assert.Equal(t, 1., Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
