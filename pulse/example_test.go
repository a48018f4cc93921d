package pulse_test

import (
	"fmt"

	"github.com/katalvlaran/cyclesim/pulse"
)

func ExamplePulseProduct() {
	input := `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a`

	product, err := pulse.PulseProduct(input, 1000)
	fmt.Println(product, err)
	// Output: 32000000 <nil>
}

func ExamplePressesUntilLow() {
	input := `broadcaster -> a1, p
%a1 -> k, t
&t -> k
&k -> x
&x -> hub
%p -> kp
&kp -> p, y
&y -> hub
&hub -> rx`

	presses, err := pulse.PressesUntilLow(input, "rx")
	fmt.Println(presses, err)
	// Output: 3 <nil>
}
