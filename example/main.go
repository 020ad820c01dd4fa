package main

import (
	"fmt"
	"slices"

	"github.com/mgnsk/linked/dlist"
	"github.com/mgnsk/linked/ringlist"
)

func main() {
	workers := ringlist.New(slices.Values([]string{"alpha", "beta", "gamma"}))
	jobs := dlist.New(slices.Values([]int{1, 2, 3, 4, 5, 6, 7}))

	// Hand out jobs to workers in round-robin order.
	for worker := range workers.Cycle() {
		job, err := jobs.PopFront()
		if err != nil {
			break
		}
		fmt.Printf("job %d -> %s\n", job, worker)
	}
}
