package nodewise_test

import (
	"fmt"
	"math"

	"github.com/fagan2888/afqinsight/nodewise"
)

// ExampleFillSeries contrasts the two policies on one series.
func ExampleFillSeries() {
	nodes := []int{0, 1, 2, 3}
	values := []float64{math.NaN(), 1, 2, math.NaN()}

	interior, _ := nodewise.FillSeries(nodes, values, nodewise.Interior)
	extra, _ := nodewise.FillSeries(nodes, values, nodewise.Extrapolate)

	fmt.Println(interior)
	fmt.Println(extra)
	// Output:
	// [1 1 2 2]
	// [0 1 2 3]
}
