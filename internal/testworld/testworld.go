// Package testworld is an in-memory reference implementation of the
// pkgs/world interfaces, used only by _test.go files across the
// module. It is never imported by pkgs/header, pkgs/validate, or
// pkgs/seed themselves.
package testworld

import (
	"sort"

	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/ori-rando/seedcore/pkgs/world"
)

// Node is a plain struct implementation of world.Node.
type Node struct {
	ID        string
	Placeable bool
	State     value.UberState
	InZone    value.Zone
	Idx       int
}

func (n Node) Identifier() string          { return n.ID }
func (n Node) CanPlace() bool              { return n.Placeable }
func (n Node) UberState() value.UberState  { return n.State }
func (n Node) Zone() value.Zone            { return n.InZone }
func (n Node) Index() int                  { return n.Idx }

// Graph is a flat, order-preserving world.Graph implementation.
type Graph struct {
	NodeList []Node
}

func (g *Graph) Nodes() []world.Node {
	nodes := make([]world.Node, len(g.NodeList))
	for i, n := range g.NodeList {
		nodes[i] = n
	}
	return nodes
}

type placement struct {
	state value.UberState
	item  value.Item
}

type poolEntry struct {
	item  value.Item
	count int
}

// World is an in-memory world.World: the pool is a slice of
// (item, count) entries in grant order, matching how the real
// implementation keeps reproducible iteration order for PRNG draws.
type World struct {
	graph       *Graph
	pool        []poolEntry
	placements  []placement
	setsList    []string
	overflowLog []value.Item // items whose Remove overflowed, for test assertions
}

// New returns an empty World backed by the given graph.
func New(g *Graph) *World {
	if g == nil {
		g = &Graph{}
	}
	return &World{graph: g}
}

func (w *World) Graph() world.Graph { return w.graph }

// Grant adds count copies of item to the pool, coalescing into an
// existing entry when the item already appears.
func (w *World) Grant(item value.Item, count int) {
	if count <= 0 {
		return
	}
	for i := range w.pool {
		if w.pool[i].item == item {
			w.pool[i].count += count
			return
		}
	}
	w.pool = append(w.pool, poolEntry{item: item, count: count})
}

// Remove takes count copies of item out of the pool; any shortfall is
// returned as overflow and also recorded for test inspection.
func (w *World) Remove(item value.Item, count int) int {
	for i := range w.pool {
		if w.pool[i].item != item {
			continue
		}
		if w.pool[i].count >= count {
			w.pool[i].count -= count
			return 0
		}
		overflow := count - w.pool[i].count
		w.pool[i].count = 0
		w.recordOverflow(item, overflow)
		return overflow
	}
	w.recordOverflow(item, count)
	return count
}

func (w *World) recordOverflow(item value.Item, n int) {
	for i := 0; i < n; i++ {
		w.overflowLog = append(w.overflowLog, item)
	}
}

// Preplace fixes item at uberState.
func (w *World) Preplace(uberState value.UberState, item value.Item) {
	w.placements = append(w.placements, placement{state: uberState, item: item})
}

// Sets lists reserved state identifiers in insertion order.
func (w *World) Sets() []string { return w.setsList }

// AddSet registers a state identifier as reserved for multiworld
// sharing. No code in this module calls it.
func (w *World) AddSet(identifier string) { w.setsList = append(w.setsList, identifier) }

// Pool returns a snapshot map of remaining pool counts, keyed by item,
// for assertions; it does not expose iteration order used by the PRNG.
func (w *World) Pool() map[value.Item]int {
	out := make(map[value.Item]int, len(w.pool))
	for _, e := range w.pool {
		if e.count > 0 {
			out[e.item] = e.count
		}
	}
	return out
}

// PoolSize returns the total number of remaining pool entries,
// counting each copy.
func (w *World) PoolSize() int {
	total := 0
	for _, e := range w.pool {
		total += e.count
	}
	return total
}

// Placements returns the preplaced items keyed by uberState; when one
// uberState was preplaced more than once, the latest item wins.
func (w *World) Placements() map[value.UberState]value.Item {
	out := make(map[value.UberState]value.Item, len(w.placements))
	for _, p := range w.placements {
		out[p.state] = p.item
	}
	return out
}

// Overflow returns the items that exceeded pool stock during Remove,
// in the order they overflowed.
func (w *World) Overflow() []value.Item {
	out := make([]value.Item, len(w.overflowLog))
	copy(out, w.overflowLog)
	return out
}

// SequentialPRNG is a deterministic world.PRNG for tests: GenRange
// always returns 0, making !!take/!!addpool draws pick the first
// remaining pool entry every time.
type SequentialPRNG struct{}

func (SequentialPRNG) GenRange(n int) int {
	if n <= 0 {
		return 0
	}
	return 0
}

// CyclicPRNG is a deterministic world.PRNG that walks 0, 1, 2, ... mod
// n on each call, useful for tests that need distinguishable draws.
type CyclicPRNG struct{ calls int }

func (c *CyclicPRNG) GenRange(n int) int {
	if n <= 0 {
		return 0
	}
	r := c.calls % n
	c.calls++
	return r
}

// MemoryFileReader serves !!include dependencies from an in-memory map
// keyed by path, for header-validator tests.
type MemoryFileReader struct {
	Files map[string]string
}

func (m MemoryFileReader) ReadFile(path, _ string) (string, error) {
	if text, ok := m.Files[path]; ok {
		return text, nil
	}
	return "", errNotFound(path)
}

type errNotFound string

func (e errNotFound) Error() string { return "testworld: no such file: " + string(e) }

// StaticSettings is a fixed world.Settings implementation.
type StaticSettings struct {
	PlayerNames []string
	Worlds      int
}

func (s StaticSettings) Players() []string { return s.PlayerNames }
func (s StaticSettings) WorldCount() int   { return s.Worlds }

// SortedPoolItems is a test helper returning the pool's items sorted
// by their emitted text, for stable assertions independent of grant
// order.
func SortedPoolItems(w *World) []string {
	pool := w.Pool()
	out := make([]string, 0, len(pool))
	for item := range pool {
		out = append(out, item.Emit())
	}
	sort.Strings(out)
	return out
}
