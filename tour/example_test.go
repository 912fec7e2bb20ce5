package tour_test

import (
	"errors"
	"fmt"

	"github.com/MichalRedm/evolutionary-computation/tour"
)

// ExampleSolution_Decode normalises a legacy digit-string solution.
func ExampleSolution_Decode() {
	ids, err := tour.FromString("120").Decode()
	if err != nil {
		fmt.Println(err)
		return
	}
	rotated, _ := tour.RotateToMin(ids)
	fmt.Println(ids, rotated, tour.Close(rotated))
	fmt.Println(tour.DebugString(rotated))

	_, err = tour.FromString("1a2").Decode()
	fmt.Println(errors.Is(err, tour.ErrDecode), err)

	// Output:
	// [1 2 0] [0 1 2] [0 1 2 0]
	// [0 1 2 | 0]
	// true tour: invalid node identifier: "a" at position 1
}
