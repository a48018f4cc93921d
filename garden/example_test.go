package garden_test

import (
	"fmt"

	"github.com/katalvlaran/cyclesim/garden"
)

func ExampleGarden_InfiniteReachable() {
	g, err := garden.Parse(".....\n.#...\n..S..\n...#.\n.....")
	if err != nil {
		fmt.Println(err)
		return
	}
	near, _ := g.Reachable(2)
	far, _ := g.InfiniteReachable(1000)
	fmt.Println(near, far.Cycle != nil)
	// Output: 7 true
}
