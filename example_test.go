package romgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/romgo"
	"github.com/hupe1980/romgo/inner"
	"github.com/hupe1980/romgo/snapshot"
)

func ExamplePOD() {
	ctx := context.Background()

	snaps, err := snapshot.FromFields(
		[]float64{2, 0},
		[]float64{0, 1},
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := romgo.POD(ctx, snaps, inner.Euclidean{}, 2, 0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(res.Eigenvalues), res.Modes.Len())
	// Output: 2 2
}

func ExamplePODBlock() {
	ctx := context.Background()

	velocity, err := snapshot.FromFields(
		[]float64{1, 0, 0},
		[]float64{0, 1, 0},
	)
	if err != nil {
		log.Fatal(err)
	}
	pressure, err := snapshot.FromFields(
		[]float64{1, 1},
		[]float64{1, -1},
	)
	if err != nil {
		log.Fatal(err)
	}

	results, err := romgo.PODBlock(ctx,
		[]*snapshot.List{velocity, pressure},
		[]inner.Form{inner.Euclidean{}, inner.Euclidean{}},
		romgo.PerBlock(2, 2),
		romgo.Scalar(0.0),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(results))
	// Output: 2
}
