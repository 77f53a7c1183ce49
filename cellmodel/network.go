package cellmodel

import (
	"fmt"
	"math"

	"github.com/notargets/gorde/utils"
)

const (
	// Physical cell size range the network output is mapped into
	CellSizeMin = 1e-4 // [m]
	CellSizeMax = 5e-2 // [m]

	numInputs  = 3
	numHidden1 = 8
	numHidden2 = 4
)

// NetworkWeights is the immutable calibration of the inference network.
// Construct once with DefaultWeights and inject into NewPredictorWithWeights.
type NetworkWeights struct {
	Hidden1    utils.Matrix // 8x3
	Bias1      utils.Vector // 8
	Hidden2    utils.Matrix // 4x8
	Bias2      utils.Vector // 4
	Output     utils.Vector // 4
	OutputBias float64
}

// DefaultWeights returns the fixed calibration. The first hidden layer
// picks up the raw features and their pairwise blends, the second selects
// them, and the output layer weights induction length against Mach number
// and thermicity. Hidden weights and biases are non-negative so the ReLU
// stages stay active over the normalized [0,1]³ input cube.
func DefaultWeights() NetworkWeights {
	return NetworkWeights{
		Hidden1: utils.NewMatrix(numHidden1, numInputs, []float64{
			1.0, 0.0, 0.0,
			0.0, 1.0, 0.0,
			0.0, 0.0, 1.0,
			0.6, 0.0, 0.4,
			0.5, 0.5, 0.0,
			0.0, 0.5, 0.5,
			0.4, 0.0, 0.6,
			0.34, 0.33, 0.33,
		}),
		Bias1: utils.NewVectorConstant(numHidden1, 0.05),
		Hidden2: utils.NewMatrix(numHidden2, numHidden1, []float64{
			1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
			0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0,
			0.0, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0, 0.0,
			0.0, 0.0, 0.0, 0.25, 0.25, 0.25, 0.25, 0.0,
		}),
		Bias2:      utils.NewVector(numHidden2),
		Output:     utils.NewVector(numHidden2, []float64{15.2, -1.8, -3.6, -1.2}),
		OutputBias: -2.1,
	}
}

// Network is the fixed-weight feed-forward cell size model:
// 3 inputs -> 8 ReLU -> 4 ReLU -> 1 sigmoid output, affine-mapped into
// [CellSizeMin, CellSizeMax].
type Network struct {
	w NetworkWeights
}

func NewNetwork(w NetworkWeights) (*Network, error) {
	if r, c := w.Hidden1.Dims(); r != numHidden1 || c != numInputs {
		return nil, fmt.Errorf("hidden layer 1 must be %dx%d, got %dx%d", numHidden1, numInputs, r, c)
	}
	if r, c := w.Hidden2.Dims(); r != numHidden2 || c != numHidden1 {
		return nil, fmt.Errorf("hidden layer 2 must be %dx%d, got %dx%d", numHidden2, numHidden1, r, c)
	}
	if w.Bias1.Len() != numHidden1 || w.Bias2.Len() != numHidden2 || w.Output.Len() != numHidden2 {
		return nil, fmt.Errorf("bias/output dimensions do not match layer sizes")
	}
	return &Network{w: w}, nil
}

// Infer runs the forward pass over normalized inputs and returns the cell
// size in meters. It returns an error instead of a value when the inputs or
// the forward pass produce a non-finite result, so the caller can select
// the correlation fallback.
func (n *Network) Infer(inputs [numInputs]float64) (float64, error) {
	for i, v := range inputs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("input %d is not finite: %v", i, v)
		}
	}
	x := utils.NewVector(numInputs, []float64{inputs[0], inputs[1], inputs[2]})

	h1 := n.w.Hidden1.MulVec(x).Add(n.w.Bias1).Apply(relu)
	h2 := n.w.Hidden2.MulVec(h1).Add(n.w.Bias2).Apply(relu)
	z := n.w.Output.Dot(h2) + n.w.OutputBias

	out := sigmoid(z)
	if math.IsNaN(out) {
		return 0, fmt.Errorf("forward pass produced non-finite output")
	}
	return CellSizeMin + out*(CellSizeMax-CellSizeMin), nil
}

func relu(x float64) float64 {
	return math.Max(0, x)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
