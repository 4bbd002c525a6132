// Package domain contains the core domain model of the build graph.
package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// AllTargets is the pseudo target selecting every action in the graph.
const AllTargets = "all"

// Node is an entry of the build graph.
type Node interface {
	// Target returns the unique target of the node.
	Target() BuildTarget
	// Deps returns the targets that must be built before this node.
	Deps() []BuildTarget
}

// Graph represents a dependency graph of actions keyed by fully qualified target name.
type Graph[N Node] struct {
	nodes          map[string]N
	dependents     map[string][]string
	executionOrder []string
}

// NewGraph creates a new empty Graph.
func NewGraph[N Node]() *Graph[N] {
	return &Graph[N]{
		nodes: make(map[string]N),
	}
}

// Add adds a node to the graph.
// It returns an error if a node with the same target already exists.
func (g *Graph[N]) Add(n N) error {
	name := n.Target().FullyQualifiedName()
	if _, exists := g.nodes[name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", name)
	}
	g.nodes[name] = n
	g.executionOrder = nil
	return nil
}

// Get returns the node for a fully qualified target name.
func (g *Graph[N]) Get(name string) (N, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Len returns the number of nodes in the graph.
func (g *Graph[N]) Len() int {
	return len(g.nodes)
}

// Validate checks for missing dependencies and cycles using a topological sort.
// It populates the execution order and the reverse edges if successful.
// Nodes are visited in name order so the execution order is deterministic.
func (g *Graph[N]) Validate() error {
	order := make([]string, 0, len(g.nodes))
	dependents := make(map[string][]string, len(g.nodes))
	visited := make(map[string]int, len(g.nodes)) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(u string) error
	visit = func(u string) error {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.nodes[u].Deps() {
			depName := dep.FullyQualifiedName()
			if _, exists := g.nodes[depName]; !exists {
				err := zerr.With(ErrMissingDependency, "dependency", depName)
				return zerr.With(err, "target", u)
			}
			dependents[depName] = append(dependents[depName], u)
			switch visited[depName] {
			case 1:
				return buildCycleError(path, depName)
			case 0:
				if err := visit(depName); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
		return nil
	}

	for _, name := range slices.Sorted(maps.Keys(g.nodes)) {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	g.executionOrder = order
	g.dependents = dependents
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []string, dep string) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(cycle, " -> "))
}

// Walk returns an iterator that yields nodes in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph[N]) Walk() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.nodes[name]) {
				return
			}
		}
	}
}

// Dependents returns the names of the nodes depending directly on name.
// It assumes Validate() has been called and returned nil.
func (g *Graph[N]) Dependents(name string) []string {
	return g.dependents[name]
}

// Select resolves target patterns to the set of node names to build,
// including all transitive dependencies.
//
// A pattern is either "all", a fully qualified target, or a target whose
// flavors are a subset of the wanted nodes' flavors (so "//App:Model" selects
// every flavor of that rule).
func (g *Graph[N]) Select(patterns []string) (map[string]bool, error) {
	if len(patterns) == 0 {
		return nil, ErrNoTargetsSpecified
	}

	selected := make(map[string]bool)
	var include func(name string)
	include = func(name string) {
		if selected[name] {
			return
		}
		selected[name] = true
		for _, dep := range g.nodes[name].Deps() {
			include(dep.FullyQualifiedName())
		}
	}

	for _, pattern := range patterns {
		if pattern == AllTargets {
			for name := range g.nodes {
				include(name)
			}
			continue
		}

		matches, err := g.match(pattern)
		if err != nil {
			return nil, err
		}
		for _, name := range matches {
			include(name)
		}
	}
	return selected, nil
}

func (g *Graph[N]) match(pattern string) ([]string, error) {
	want, err := ParseBuildTarget(pattern)
	if err != nil {
		return nil, err
	}

	name := want.FullyQualifiedName()
	if _, ok := g.nodes[name]; ok {
		return []string{name}, nil
	}

	var matches []string
	for candidate, n := range g.nodes {
		t := n.Target()
		if t.BaseName != want.BaseName || t.ShortName != want.ShortName {
			continue
		}
		if hasAllFlavors(t, want.Flavors) {
			matches = append(matches, candidate)
		}
	}
	if len(matches) == 0 {
		return nil, zerr.With(ErrTargetNotFound, "target", pattern)
	}
	slices.Sort(matches)
	return matches, nil
}

func hasAllFlavors(t BuildTarget, flavors []string) bool {
	for _, f := range flavors {
		if !t.HasFlavor(f) {
			return false
		}
	}
	return true
}
