package driver

import "autodiff/graph"

// ReverseFunc is the R^n->R user function ReverseMode differentiates: f
// receives one leaf node per input and must return a single output node
// built from it via graph arithmetic and the graph elementary library.
// Vector output is unsupported by this driver; extending to m outputs
// requires m independent ReverseMode calls, one per output.
type ReverseFunc func(x []*graph.Node) *graph.Node

// ReverseMode differentiates f at x: it builds one leaf node per input,
// evaluates f to obtain the output node, runs the adjoint-accumulation
// reverse pass once, and reads off the gradient.
//
// x is always a slice; a single scalar input is passed as the length-1
// slice []float64{x}.
func ReverseMode(f ReverseFunc, x []float64) (value float64, gradient []float64) {
	leaves := make([]*graph.Node, len(x))
	for i, xi := range x {
		leaves[i] = graph.Leaf(xi)
	}

	y := f(leaves)
	adjoints := graph.Backward(y)

	gradient = make([]float64, len(leaves))
	for i, n := range leaves {
		gradient[i] = adjoints[n]
	}
	return y.Value, gradient
}
