// Command adctl is a small demonstration entry point for the automatic
// differentiation engine: it evaluates a fixed library of example
// functions through the forward-mode entry points (ForwardScalar,
// Jacobian) and ReverseMode and prints the value and derivative(s) of each.
//
// The engine itself is a library; the driver is its boundary (no wire
// protocol, no persistent state). adctl exists only to give that library a
// runnable demonstration, in the same fmt.Println-to-stdout register the
// teacher program used for its own startup message.
package main

import (
	"flag"
	"fmt"
	"os"

	"autodiff/driver"
	"autodiff/forward"
	"autodiff/graph"
)

func main() {
	mode := flag.String("mode", "all", "which demo to run: forward, reverse, jacobian, or all")
	flag.Parse()

	switch *mode {
	case "forward":
		runForwardDemo()
	case "reverse":
		runReverseDemo()
	case "jacobian":
		runJacobianDemo()
	case "all":
		runForwardDemo()
		runReverseDemo()
		runJacobianDemo()
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want forward, reverse, jacobian, or all)\n", *mode)
		os.Exit(2)
	}
}

// runForwardDemo reproduces scenario 1 of the engine's end-to-end test
// table: f(x)=x^2 at x=3.
func runForwardDemo() {
	square := driver.ScalarFunc(func(x forward.Dual) forward.Dual {
		y, err := x.Pow(forward.Constant(2))
		if err != nil {
			panic(err)
		}
		return y
	})

	value, derivative := driver.ForwardScalar(square, 3)
	fmt.Printf("forward: x^2 at x=3 -> value=%v derivative=%v\n", value, derivative)
}

// runReverseDemo reproduces scenario 3: cos(x1+x2) + x3*x2^3 at (1,2,3).
func runReverseDemo() {
	f := func(x []*graph.Node) *graph.Node {
		x2Cubed, err := x[1].Pow(graph.Real(3))
		if err != nil {
			panic(err)
		}
		return graph.Cos(x[0].Add(x[1])).Add(x[2].Mul(x2Cubed))
	}

	value, gradient := driver.ReverseMode(f, []float64{1, 2, 3})
	fmt.Printf("reverse: cos(x1+x2)+x3*x2^3 at (1,2,3) -> value=%v gradient=%v\n", value, gradient)
}

// runJacobianDemo reproduces scenario 6: the R^2->R^2 function
// (x0^2+x1^3+5x0x1, x0^7+x1^11+13x0x1) at (17,19).
func runJacobianDemo() {
	f := driver.VectorVectorFunc(func(xs []forward.Dual) []forward.Dual {
		x0, x1 := xs[0], xs[1]
		x0sq, _ := x0.Pow(forward.Constant(2))
		x1cb, _ := x1.Pow(forward.Constant(3))
		f0 := x0sq.Add(x1cb).Add(x0.Mul(x1).Mul(forward.Real(5)))

		x0to7, _ := x0.Pow(forward.Constant(7))
		x1to11, _ := x1.Pow(forward.Constant(11))
		f1 := x0to7.Add(x1to11).Add(x0.Mul(x1).Mul(forward.Real(13)))

		return []forward.Dual{f0, f1}
	})

	value, jacobian := driver.Jacobian(f, []float64{17, 19})
	fmt.Printf("jacobian: value=%v\nJ=%v\n", value, jacobian)
}
