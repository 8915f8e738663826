// Package graph builds the registry-wide dependency graph and checks
// individual skills against it.
package graph

import (
	"slices"
	"strings"

	"github.com/harunnryd/skillref/internal/skill/registry"
)

// Graph maps each skill name to the names it requires, taken verbatim from
// its descriptor. Edge targets need not be nodes.
type Graph struct {
	nodes []string
	edges map[string][]string
}

func New() *Graph {
	return &Graph{edges: make(map[string][]string)}
}

// Build scans root and returns a fresh graph. Unparseable skills are left out.
func Build(root string) (*Graph, error) {
	idx, err := registry.Scan(root)
	if err != nil {
		return nil, err
	}
	return FromIndex(idx), nil
}

func FromIndex(idx *registry.Index) *Graph {
	g := New()
	for _, e := range idx.Entries() {
		g.AddSkill(e.Name(), e.Metadata.RequiredNames())
	}
	return g
}

// AddSkill adds a node. A name that is already present keeps its first edges.
func (g *Graph) AddSkill(name string, requires []string) {
	if _, ok := g.edges[name]; ok {
		return
	}
	g.nodes = append(g.nodes, name)
	g.edges[name] = append([]string{}, requires...)
}

func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

func (g *Graph) Has(name string) bool {
	_, ok := g.edges[name]
	return ok
}

func (g *Graph) Requires(name string) []string {
	return append([]string(nil), g.edges[name]...)
}

type frame struct {
	node string
	next int
}

// traversal holds the state of one cycle search.
type traversal struct {
	g       *Graph
	visited map[string]bool
	onPath  map[string]int
	path    []string
	stack   []frame
	cycles  [][]string
}

// CyclesFromAnyRoot runs a depth-first search from every unvisited node and
// returns each cycle as the path slice from the repeated node back to itself,
// e.g. [a b a]. The same structural cycle can be reported more than once when
// several entry points reach it.
func (g *Graph) CyclesFromAnyRoot() [][]string {
	t := &traversal{
		g:       g,
		visited: make(map[string]bool),
		onPath:  make(map[string]int),
	}

	for _, node := range g.nodes {
		if t.visited[node] {
			continue
		}
		t.enter(node)
		t.run()
	}
	return t.cycles
}

func (t *traversal) enter(node string) {
	if idx, ok := t.onPath[node]; ok {
		cycle := make([]string, 0, len(t.path)-idx+1)
		cycle = append(cycle, t.path[idx:]...)
		cycle = append(cycle, node)
		t.cycles = append(t.cycles, cycle)
		return
	}
	if t.visited[node] {
		return
	}

	t.visited[node] = true
	t.onPath[node] = len(t.path)
	t.path = append(t.path, node)
	t.stack = append(t.stack, frame{node: node})
}

func (t *traversal) run() {
	for len(t.stack) > 0 {
		top := len(t.stack) - 1
		f := &t.stack[top]
		neighbors := t.g.edges[f.node]

		if f.next < len(neighbors) {
			next := neighbors[f.next]
			f.next++
			t.enter(next)
			continue
		}

		delete(t.onPath, f.node)
		t.path = t.path[:len(t.path)-1]
		t.stack = t.stack[:top]
	}
}

// Deduplicate rotates each cycle to start at its lexicographically smallest
// rotation and drops repeats, keeping first-seen order.
func Deduplicate(cycles [][]string) [][]string {
	seen := make(map[string]bool)
	var out [][]string

	for _, cycle := range cycles {
		normalized := normalize(cycle)
		key := strings.Join(normalized, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, normalized)
	}
	return out
}

func normalize(cycle []string) []string {
	if len(cycle) < 2 {
		return append([]string(nil), cycle...)
	}

	// drop the closing node, rotate, close again
	ring := cycle[:len(cycle)-1]
	best := ring
	for i := 1; i < len(ring); i++ {
		rotated := append(append([]string{}, ring[i:]...), ring[:i]...)
		if slices.Compare(rotated, best) < 0 {
			best = rotated
		}
	}

	out := append([]string{}, best...)
	return append(out, best[0])
}

// Involves reports whether name appears in any cycle.
func Involves(cycles [][]string, name string) bool {
	for _, cycle := range cycles {
		if slices.Contains(cycle, name) {
			return true
		}
	}
	return false
}

func FormatCycle(cycle []string) string {
	return strings.Join(cycle, " -> ")
}
