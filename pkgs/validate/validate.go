// Package validate implements the standalone header validator (§4.G): a
// dry run of the header preprocessor against an empty graph that checks
// every !!include dependency resolves and collects the set of uber-states
// the header occupies, for cross-header conflict detection.
package validate

import (
	"fmt"
	"sort"
	"strings"

	coreerrors "github.com/ori-rando/seedcore/pkgs/errors"
	"github.com/ori-rando/seedcore/pkgs/header"
	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/ori-rando/seedcore/pkgs/world"
)

// emptyGraph is the graph a validation pass runs against: a header being
// validated in isolation has no traversal graph to pre-place against, so
// !!set and pickup-placement are no-ops and only occupied-state
// bookkeeping is observed.
type emptyGraph struct{}

func (emptyGraph) Nodes() []world.Node { return nil }

// discardWorld satisfies world.World by throwing away every mutation; a
// validation pass cares only about which uber-states a header touches,
// not the resulting pool or placement state.
type discardWorld struct{}

func (discardWorld) Grant(value.Item, int)                    {}
func (discardWorld) Remove(value.Item, int) int                { return 0 }
func (discardWorld) Preplace(value.UberState, value.Item)      {}
func (discardWorld) Sets() []string                            { return nil }
func (discardWorld) Graph() world.Graph                        { return emptyGraph{} }

// zeroPRNG always draws index 0; a validation pass only needs any pool
// entry to satisfy a !!take, not a fair draw.
type zeroPRNG struct{}

func (zeroPRNG) GenRange(int) int { return 0 }

// Header validates header's own per-line syntax via a full preprocessor
// pass against an empty world, confirms every !!include dependency is
// readable through reader, and collects the sorted, deduplicated set of
// group-9 uber-states it occupies plus the excludes it declares.
//
// Conditional branches are NOT pruned here: unlike a real generation
// pass, validation walks every !!pool/!!addpool/!!parameter/!!flush
// directive in source order regardless of !!if/!!endif gating, since the
// goal is the superset of states a header could ever occupy.
func Header(name, contents string, reader world.FileReader) ([]value.UberState, map[string]string, error) {
	_, ctx, err := header.Process(name, contents, discardWorld{}, zeroPRNG{}, nil)
	if err != nil {
		return nil, nil, err
	}

	if reader != nil {
		for _, dependency := range ctx.Dependencies {
			if _, err := reader.ReadFile(dependency, "headers"); err != nil {
				return nil, nil, coreerrors.Wrap(coreerrors.Resource, err, "dependency %s could not be read", dependency)
			}
		}
	}

	occupied, err := occupiedStates(contents)
	if err != nil {
		return nil, nil, err
	}
	return occupied, ctx.Excludes, nil
}

// occupiedStates re-walks contents line by line, replaying only the pool
// mechanics (!!pool/!!addpool/!!parameter/!!flush/!!take/$PARAM) needed to
// reproduce the literal pickup lines a real pass would see, and records
// every state a group-9 pickup line sets or a Stop*/timer command touches.
func occupiedStates(contents string) ([]value.UberState, error) {
	var (
		pool       []string
		parameters = make(map[string]string)
		prng       = zeroPRNG{}
		occupied   []value.UberState
		firstLine  = true
	)

	for _, raw := range strings.Split(contents, "\n") {
		line, err := header.ApplyTake(raw, &pool, prng)
		if err != nil {
			return nil, err
		}
		line, err = header.ApplyParameters(line, parameters)
		if err != nil {
			return nil, err
		}

		trimmed := strings.TrimSpace(line)

		if firstLine {
			firstLine = false
			if strings.HasPrefix(trimmed, "#") {
				continue
			}
		}

		if strings.HasPrefix(line, "Flags:") || strings.HasPrefix(line, "timer:") {
			continue
		}

		skipLine := false
		if idx := strings.Index(trimmed, "//"); idx >= 0 {
			if strings.Contains(trimmed[idx:], "skip-validate") {
				skipLine = true
			}
			trimmed = strings.TrimSpace(trimmed[:idx])
		}

		if trimmed == "" {
			continue
		}
		if skipLine {
			continue
		}

		if command, ok := strings.CutPrefix(trimmed, "!!"); ok {
			switch {
			case strings.HasPrefix(command, "parameter "):
				if err := parameterCommand(strings.TrimSpace(command[len("parameter "):]), parameters); err != nil {
					return nil, coreerrors.InContext(err, "parameter command "+line)
				}
			case strings.HasPrefix(command, "pool "):
				if err := header.PoolCommand(command[len("pool "):], &pool); err != nil {
					return nil, err
				}
			case strings.HasPrefix(command, "addpool "):
				if err := addpoolCommand(strings.TrimSpace(command[len("addpool "):]), &pool, prng); err != nil {
					return nil, err
				}
			case strings.TrimSpace(command) == "flush":
				pool = pool[:0]
			}
			continue
		}

		trimmed = strings.TrimPrefix(trimmed, "!")

		parts := strings.SplitN(trimmed, "|", 3)
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed pickup %s", trimmed)
		}
		uberState, err := value.ParseUberState(parts[0] + "|" + parts[1])
		if err != nil {
			return nil, fmt.Errorf("malformed pickup %s: %w", trimmed, err)
		}

		if uberState.Identifier.Group == 9 {
			occupied = append(occupied, uberState)
		}

		item, err := value.Parse(parts[2])
		if err != nil {
			return nil, err
		}

		states, err := occupiedByItem(item, uberState.Identifier.Group, trimmed)
		if err != nil {
			return nil, err
		}
		occupied = append(occupied, states...)
	}

	return collapse(occupied), nil
}

// occupiedByItem extracts the extra uber-states (beyond the pickup line's
// own trigger) an item implicitly reserves: a group-9 set-uber-state
// command reserves its own target, a timer command reserves its
// identifier with the sentinel value "++" so it sorts and collapses
// alongside "+"/"-" entries, and a Stop* command reserves its inner
// uber-state provided the whole pickup line itself lives in group 9
// (otherwise it could silently stop an unrelated multipickup elsewhere).
func occupiedByItem(item value.Item, pickupGroup uint16, trimmed string) ([]value.UberState, error) {
	switch item.Kind {
	case value.ItemUberState:
		command := item.UberState
		if command.Identifier.Group != 9 {
			return nil, nil
		}
		if command.Operator.Kind != value.OperatorValue {
			// pointer/range operators are trusted as authored.
			return nil, nil
		}
		literal := command.Operator.Literal
		if literal == "false" || literal == "0" {
			return nil, nil
		}
		if literal == "true" {
			literal = "1"
		}
		return []value.UberState{{Identifier: command.Identifier, Value: literal}}, nil

	case value.ItemCommand:
		switch item.Command.Kind {
		case value.CmdStartTimer, value.CmdStopTimer:
			return []value.UberState{{Identifier: item.Command.Identifier, Value: "++"}}, nil
		case value.CmdStopEqual, value.CmdStopGreater, value.CmdStopLess:
			if pickupGroup != 9 {
				return nil, fmt.Errorf("stop command on %s stops a multipickup outside of uber group 9, this may interact unpredictably with other headers", trimmed)
			}
			if item.Command.UberState.Identifier.Group != 9 {
				return nil, nil
			}
			return []value.UberState{item.Command.UberState}, nil
		}
	}
	return nil, nil
}

// collapse sorts and deduplicates occupied, then folds every "+"/"-"
// timer-sentinel or already-empty-value entry for a given identifier
// down to a single bare (empty-value) entry: those operators touch the
// identifier without fixing it to one literal value, so only one
// reservation per identifier is meaningful.
func collapse(occupied []value.UberState) []value.UberState {
	occupied = dedupByFingerprint(occupied)
	sort.Slice(occupied, func(i, j int) bool { return less(occupied[i], occupied[j]) })

	// blank every "+"/"-" relative-adjustment or already-bare entry so the
	// retain pass below can fold all of an identifier's reservations down
	// to that one bare entry.
	for i := range occupied {
		v := occupied[i].Value
		if v == "" || strings.HasPrefix(v, "+") || strings.HasPrefix(v, "-") {
			occupied[i].Value = ""
		}
	}

	identifiersWithBare := make(map[value.UberIdentifier]bool)
	for _, state := range occupied {
		if state.Value == "" {
			identifiersWithBare[state.Identifier] = true
		}
	}

	filtered := occupied[:0]
	for _, state := range occupied {
		if state.Value != "" && identifiersWithBare[state.Identifier] {
			continue
		}
		filtered = append(filtered, state)
	}

	sort.Slice(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })
	return dedupSorted(filtered)
}

func less(a, b value.UberState) bool {
	if a.Identifier.Group != b.Identifier.Group {
		return a.Identifier.Group < b.Identifier.Group
	}
	if a.Identifier.ID != b.Identifier.ID {
		return a.Identifier.ID < b.Identifier.ID
	}
	return a.Value < b.Value
}

func dedupSorted(states []value.UberState) []value.UberState {
	if len(states) == 0 {
		return states
	}
	out := states[:1]
	for _, s := range states[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

func parameterCommand(arg string, parameters map[string]string) error {
	parts := strings.SplitN(arg, " ", 2)
	identifier := parts[0]
	if len(parts) < 2 {
		return fmt.Errorf("missing default value")
	}
	defaultParts := strings.SplitN(parts[1], ":", 2)
	defaultValue := defaultParts[0]
	if len(defaultParts) == 2 {
		defaultValue = defaultParts[1]
	}
	parameters[identifier] = defaultValue
	return nil
}

func addpoolCommand(arg string, pool *[]string, prng world.PRNG) error {
	count, rest := header.ParseHeaderCount(arg)
	if strings.TrimSpace(rest) != "" {
		return fmt.Errorf("invalid amount")
	}
	for i := uint16(0); i < count; i++ {
		if len(*pool) == 0 {
			return fmt.Errorf("tried to !!take on an empty !!pool")
		}
		index := prng.GenRange(len(*pool))
		*pool = append((*pool)[:index], (*pool)[index+1:]...)
	}
	return nil
}
