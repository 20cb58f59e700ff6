package chromatic_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/sat"
)

// ExampleSearch determines χ of the Moser spindle.
func ExampleSearch() {
	g, _ := builder.UnitDistance(builder.MoserSpindle())
	oracle := coloring.New(sat.NewGophersat())

	res, err := chromatic.Search(context.Background(), oracle, g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g, res)
	for _, c := range res.Certificates {
		fmt.Println(c.String())
	}
	// Output:
	// Graph(V=7, E=11) χ = 4
	// χ > 1 (V=7, E=11)
	// χ > 2 (V=7, E=11)
	// χ > 3 (V=7, E=11)
	// χ ≤ 4 (V=7, E=11)
}
