// Package world defines the external collaborator interfaces the
// header preprocessor and validator consume: a mutable item pool and
// preplacement sink (World), a static traversal graph (Graph, Node), a
// uniform random source (PRNG), an include-file loader (FileReader),
// and per-run player settings (Settings).
//
// Nothing in this package is implemented here — internal/testworld
// provides an in-memory reference implementation used only by tests.
package world

import "github.com/ori-rando/seedcore/pkgs/value"

// PRNG is the sole source of nondeterminism in the compiler. All random
// choices (!!take, !!addpool) draw uniformly from the current pool.
type PRNG interface {
	// GenRange returns a value in [0, n). n must be > 0.
	GenRange(n int) int
}

// FileReader loads the text of an include dependency during header
// validation; kind distinguishes header text from other asset kinds.
type FileReader interface {
	ReadFile(path, kind string) (string, error)
}

// Settings exposes the subset of run configuration $WHEREIS needs to
// personalize its output across a multiworld.
type Settings interface {
	Players() []string
	WorldCount() int
}

// Node is one reachable location in the static traversal graph built
// by pkgs/parser and pkgs/ast.
type Node interface {
	Identifier() string
	CanPlace() bool
	UberState() value.UberState
	Zone() value.Zone
	Index() int
}

// Graph is the static, read-only traversal graph the header
// preprocessor consults when pre-placing pickups and resolving
// $WHEREIS/$HOWMANY queries.
type Graph interface {
	Nodes() []Node
}

// World is the mutable state a header invocation reads and writes: the
// shared item pool, the preplacement sink, and the index of sets
// (state identifiers requiring special multiworld handling).
type World interface {
	// Grant adds count copies of item to the pool.
	Grant(item value.Item, count int)
	// Remove takes count copies of item out of the pool, returning how
	// many could not be satisfied (spilled into negative inventory by
	// the caller).
	Remove(item value.Item, count int) (overflow int)
	// Preplace fixes item at uberState, consumed later by the
	// placement engine instead of being placed at random.
	Preplace(uberState value.UberState, item value.Item)
	// Sets lists every state-node identifier reserved for multiworld
	// sharing.
	Sets() []string
	// Graph exposes the static traversal graph this world was built
	// against.
	Graph() Graph
}
