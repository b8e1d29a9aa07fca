// Package seed implements the seed postprocessor (§4.F): expansion of
// the $WHEREIS and $HOWMANY macros left behind in a compiled seed's text
// after header processing, resolved against the full multiworld's
// generated output rather than a single header's own lines.
package seed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ori-rando/seedcore/pkgs/header"
	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/ori-rando/seedcore/pkgs/world"
)

// anchored compiles pattern the way both macros do: anchored as a whole
// match, never a substring search.
func anchored(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid regex %s: %w", pattern, err)
	}
	return re, nil
}

// seedLine is one parsed, comment-stripped pickup line of a generated
// seed's text, skipping Flags/Spawn/timer meta lines the way both macros
// do when scanning for a matching pickup.
type seedLine struct {
	group, id, item string
}

func scanSeedLines(text string, visit func(seedLine) (stop bool)) {
	for _, raw := range strings.Split(text, "\n") {
		line := raw
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Flags:") || strings.HasPrefix(line, "Spawn:") || strings.HasPrefix(line, "timer:") {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}
		if visit(seedLine{group: parts[0], id: parts[1], item: parts[2]}) {
			return
		}
	}
}

// WhereIs resolves a single $WHEREIS(pattern) macro against seeds'
// worldIndex entry: the first pickup line whose item text matches
// pattern resolves to its graph node's zone name, with three special
// cases — the spawn sentinel resolves to "Spawn", a multiworld
// shared-cell pickup (group 12) recurses into every other world looking
// for the cell's own "set true" pickup and prefixes the owning player's
// name, and no match resolves to "Unknown".
func WhereIs(pattern string, worldIndex int, seeds []string, graph world.Graph, settings world.Settings) (string, error) {
	re, err := anchored(pattern)
	if err != nil {
		return "", err
	}

	result := "Unknown"
	var scanErr error

	scanSeedLines(seeds[worldIndex], func(line seedLine) bool {
		if !re.MatchString(line.item) {
			return false
		}

		switch {
		case line.group == "12":
			actualItem := fmt.Sprintf(`8\|12\|%s\|bool\|true`, line.id)
			for other := 0; other < len(seeds); other++ {
				if other == worldIndex {
					continue
				}
				zone, err := WhereIs(actualItem, other, seeds, graph, settings)
				if err != nil {
					scanErr = err
					return true
				}
				if zone != "Unknown" {
					playerName := fmt.Sprintf("Player %d", other+1)
					if players := settings.Players(); other < len(players) {
						playerName = players[other]
					}
					result = fmt.Sprintf("%s's %s", playerName, zone)
					return true
				}
			}
			return false

		case line.group == "3" && (line.id == "0" || line.id == "1"):
			result = "Spawn"
			return true

		default:
			uberState, err := value.ParseUberState(line.group + "|" + line.id)
			if err != nil {
				scanErr = err
				return true
			}
			for _, node := range graph.Nodes() {
				if node.UberState() == uberState {
					result = node.Zone().String()
					return true
				}
			}
			return false
		}
	})

	if scanErr != nil {
		return "", scanErr
	}
	return result, nil
}

// HowMany collects every uber-state in zone whose seed-text pickup's
// item matches pattern, including a pickup that merely redirects into a
// multiworld shared cell whose other-world owner's item matches pattern.
func HowMany(pattern string, zone value.Zone, worldIndex int, seeds []string, graph world.Graph) ([]value.UberState, error) {
	re, err := anchored(pattern)
	if err != nil {
		return nil, err
	}

	var locations []value.UberState
	var scanErr error

	scanSeedLines(seeds[worldIndex], func(line seedLine) bool {
		uberState, err := value.ParseUberState(line.group + "|" + line.id)
		if err != nil {
			scanErr = err
			return true
		}

		inZone := false
		for _, node := range graph.Nodes() {
			if node.Zone() == zone && node.UberState() == uberState {
				inZone = true
				break
			}
		}
		if !inZone {
			return false
		}

		if re.MatchString(line.item) {
			locations = append(locations, uberState)
			return false
		}

		shareID, ok := sharedCellID(line.item)
		if !ok {
			return false
		}
		sharePrefix := "12|" + shareID + "|"
		for other := 0; other < len(seeds); other++ {
			if other == worldIndex {
				continue
			}
			matched := false
			scanOtherLines(seeds[other], sharePrefix, func(actualItem string) bool {
				if re.MatchString(actualItem) {
					matched = true
					return true
				}
				return false
			})
			if matched {
				locations = append(locations, uberState)
				break
			}
		}
		return false
	})

	if scanErr != nil {
		return nil, scanErr
	}
	return locations, nil
}

// sharedCellID extracts the share id out of an "8|12|ID|..." set-uber-
// state item code naming a multiworld shared cell, or false if item
// isn't one.
func sharedCellID(item string) (string, bool) {
	parts := strings.SplitN(item, "|", 3)
	if len(parts) < 3 || parts[0] != "8" || parts[1] != "12" {
		return "", false
	}
	id, _, _ := strings.Cut(parts[2], "|")
	return id, true
}

// scanOtherLines walks another world's raw seed text (not its parsed
// pickup lines) looking for a line literally prefixed by sharePrefix,
// the way the original matches against the whole shared-cell line rather
// than just its own group|id|item split.
func scanOtherLines(text, sharePrefix string, visit func(actualItem string) (stop bool)) {
	for _, raw := range strings.Split(text, "\n") {
		rest, ok := strings.CutPrefix(raw, sharePrefix)
		if !ok {
			continue
		}
		if idx := strings.Index(rest, "//"); idx >= 0 {
			rest = rest[:idx]
		}
		rest = strings.TrimSpace(rest)
		if visit(rest) {
			return
		}
	}
}

// Postprocess expands every $WHEREIS and $HOWMANY macro occurrence in
// each world's seed text, reading from a frozen snapshot of every
// world's pre-expansion text (the input seeds are never modified; the
// expanded text goes to a separate result slice) so a macro in one world's text can
// always see every other world's original pickups regardless of
// expansion order between worlds.
func Postprocess(seeds []string, graph world.Graph, settings world.Settings) ([]string, error) {
	snapshot := append([]string(nil), seeds...)
	out := make([]string, len(seeds))

	for worldIndex, text := range seeds {
		expanded, err := expandWhereIs(text, worldIndex, snapshot, graph, settings)
		if err != nil {
			return nil, err
		}
		expanded, err = expandHowMany(expanded, worldIndex, snapshot, graph)
		if err != nil {
			return nil, err
		}
		out[worldIndex] = expanded
	}
	return out, nil
}

func expandWhereIs(text string, worldIndex int, snapshot []string, graph world.Graph, settings world.Settings) (string, error) {
	const marker = "$WHEREIS("
	var b strings.Builder
	last := 0
	for {
		rel := strings.Index(text[last:], marker)
		if rel < 0 {
			b.WriteString(text[last:])
			return b.String(), nil
		}
		start := last + rel
		afterParen := start + len(marker)
		end, ok := header.ReadBalanced(text, afterParen)
		if !ok {
			b.WriteString(text[last:])
			return b.String(), nil
		}
		pattern := strings.TrimSpace(text[afterParen:end])
		zone, err := WhereIs(pattern, worldIndex, snapshot, graph, settings)
		if err != nil {
			return "", err
		}
		b.WriteString(text[last:start])
		b.WriteString(zone)
		last = end + 1
	}
}

func expandHowMany(text string, worldIndex int, snapshot []string, graph world.Graph) (string, error) {
	const marker = "$HOWMANY("
	var b strings.Builder
	last := 0
	for {
		rel := strings.Index(text[last:], marker)
		if rel < 0 {
			b.WriteString(text[last:])
			return b.String(), nil
		}
		start := last + rel
		afterParen := start + len(marker)
		end, ok := header.ReadBalanced(text, afterParen)
		if !ok {
			b.WriteString(text[last:])
			return b.String(), nil
		}
		args := strings.SplitN(text[afterParen:end], ",", 2)
		zoneText := strings.TrimSpace(args[0])
		zoneID, err := strconv.Atoi(zoneText)
		if err != nil {
			return "", fmt.Errorf("expected numeric zone, got %s", zoneText)
		}
		zone, err := value.ParseZone(zoneID)
		if err != nil {
			return "", err
		}
		pattern := ""
		if len(args) == 2 {
			pattern = strings.TrimSpace(args[1])
		}

		locations, err := HowMany(pattern, zone, worldIndex, snapshot, graph)
		if err != nil {
			return "", err
		}
		sysMessage := "$[15|4|" + joinUberStates(locations) + "]"

		b.WriteString(text[last:start])
		b.WriteString(sysMessage)
		last = end + 1
	}
}

// joinUberStates renders each located uber-state as "group,id" and joins
// them comma-separated, matching the SysMessage literal's flat argument
// list ($[15|4|g1,i1,g2,i2,...]).
func joinUberStates(states []value.UberState) string {
	parts := make([]string, 0, len(states)*2)
	for _, s := range states {
		parts = append(parts,
			strconv.FormatUint(uint64(s.Identifier.Group), 10),
			strconv.FormatUint(uint64(s.Identifier.ID), 10),
		)
	}
	return strings.Join(parts, ",")
}
