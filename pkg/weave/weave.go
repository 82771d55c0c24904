// Package weave validates a batch of block packages as a dependency graph
// over channel names, orders them topologically, and weaves each into a
// runnable block against a shared registry.
package weave

import (
	"sort"

	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/channels"
)

// Node is implemented by anything the weaver can place in a plan: a
// package's input/output channel names, and a way to weave it into a
// type-erased Block once the registry is ready for it.
type Node interface {
	InputChannels() []string
	OutputChannels() []string
	WeaveErased(r *channels.Registry) (blocks.Block, error)
}

// Weave validates nodes as a DAG over channel names and weaves them into
// Blocks in topological order.
//
// Ready nodes (indegree zero) are always picked in ascending original-index
// order, not insertion order into a queue, so the emitted order is stable
// across runs for the same input slice regardless of which edges happen to
// be discovered first.
func Weave(nodes []Node, registry *channels.Registry) ([]blocks.Block, error) {
	n := len(nodes)

	inputs := make([][]string, n)
	outputs := make([][]string, n)
	for i, node := range nodes {
		inputs[i] = node.InputChannels()
		outputs[i] = node.OutputChannels()
	}

	producerOf := make(map[string]int, n)
	for i, outs := range outputs {
		for _, ch := range outs {
			if _, exists := producerOf[ch]; exists {
				return nil, &channels.DuplicateOutputKeyError{Key: ch}
			}
			producerOf[ch] = i
		}
	}

	edges := make([]map[int]struct{}, n)
	for i := range edges {
		edges[i] = make(map[int]struct{})
	}
	indegree := make([]int, n)

	for consumer, ins := range inputs {
		for _, ch := range ins {
			producer, ok := producerOf[ch]
			if ok {
				if producer == consumer {
					// Self-loop: the channel is both produced and consumed by
					// this node. Tolerated, no edge added.
					continue
				}
				if _, dup := edges[producer][consumer]; !dup {
					edges[producer][consumer] = struct{}{}
					indegree[consumer]++
				}
				continue
			}
			if !registry.Has(ch) {
				return nil, &channels.MissingProducerError{Key: ch}
			}
		}
	}

	ready := make([]bool, n)
	for i := 0; i < n; i++ {
		ready[i] = indegree[i] == 0
	}
	visited := make([]bool, n)
	topo := make([]int, 0, n)

	for len(topo) < n {
		next := -1
		for i := 0; i < n; i++ {
			if ready[i] && !visited[i] {
				next = i
				break
			}
		}
		if next == -1 {
			break
		}

		visited[next] = true
		topo = append(topo, next)

		neighbors := make([]int, 0, len(edges[next]))
		for v := range edges[next] {
			neighbors = append(neighbors, v)
		}
		sort.Ints(neighbors)
		for _, v := range neighbors {
			indegree[v]--
			if indegree[v] == 0 {
				ready[v] = true
			}
		}
	}

	if len(topo) != n {
		var cyclic []int
		for i := 0; i < n; i++ {
			if indegree[i] > 0 {
				cyclic = append(cyclic, i)
			}
		}
		return nil, &channels.CycleDetectedError{Indices: cyclic}
	}

	result := make([]blocks.Block, 0, n)
	for _, idx := range topo {
		b, err := nodes[idx].WeaveErased(registry)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}

	return result, nil
}
