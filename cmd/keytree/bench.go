package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/keytree-go/keytree"
	"github.com/spf13/cobra"
)

type benchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
}

func (r benchResult) String() string {
	opsPerSec := float64(r.Ops) / r.Duration.Seconds()
	return fmt.Sprintf("%-30s %12v  (%d ops, %.0f ops/sec)",
		r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
}

func newBenchCommand() *cobra.Command {
	var (
		nodes   int
		fanout  int
		travels int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure append, traversal and removal throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(nodes, fanout, travels, seed)
		},
	}
	cmd.Flags().IntVar(&nodes, "nodes", 100000, "number of nodes to build")
	cmd.Flags().IntVar(&fanout, "fanout", 8, "maximum children per node")
	cmd.Flags().IntVar(&travels, "travels", 10000, "number of route traversals")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for tree shape")
	return cmd
}

func runBench(nodes, fanout, travels int, seed int64) error {
	if nodes < 1 || fanout < 1 || travels < 0 {
		return fmt.Errorf("invalid parameters: nodes=%d fanout=%d travels=%d", nodes, fanout, travels)
	}

	rng := rand.New(rand.NewSource(seed))
	tree := keytree.New[int, int]()

	fmt.Printf("keytree bench: %d nodes, fanout %d, %d traversals\n\n", nodes, fanout, travels)

	// Build: each node picks a random parent that still has capacity.
	// Parent candidates are tracked so appends never fail.
	start := time.Now()
	if err := tree.Append(keytree.NewRoot(0, 0)); err != nil {
		return err
	}
	open := []int{0}      // keys with spare child capacity
	childCount := map[int]int{0: 0}
	for i := 1; i < nodes; i++ {
		slot := rng.Intn(len(open))
		parent := open[slot]
		if err := tree.Append(keytree.NewNode(i, i, parent)); err != nil {
			return err
		}
		childCount[parent]++
		if childCount[parent] >= fanout {
			open[slot] = open[len(open)-1]
			open = open[:len(open)-1]
		}
		open = append(open, i)
		childCount[i] = 0
	}
	fmt.Println(benchResult{Name: "append", Duration: time.Since(start), Ops: nodes})

	// Travel: resolve routes to random nodes and walk them.
	start = time.Now()
	for i := 0; i < travels; i++ {
		key := rng.Intn(nodes)
		route, ok := tree.PathTo(key)
		if !ok {
			return fmt.Errorf("missing node %d", key)
		}
		if _, ok := tree.TravelTo(route...); !ok {
			return fmt.Errorf("route to %d did not resolve", key)
		}
	}
	fmt.Println(benchResult{Name: "path+travel", Duration: time.Since(start), Ops: travels})

	// Remove: tear the whole tree down from the root.
	start = time.Now()
	removed := tree.RemoveSubtree(0)
	fmt.Println(benchResult{Name: "remove subtree", Duration: time.Since(start), Ops: removed})

	if !tree.IsEmpty() {
		return fmt.Errorf("tree not empty after removal: %d nodes left", tree.Len())
	}
	return nil
}
