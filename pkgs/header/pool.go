package header

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ori-rando/seedcore/pkgs/world"
)

// ApplyTake splits line on the literal token "!!take", drawing a
// uniformly random entry out of pool between each segment via prng.
// Draws are destructive: a take and an addpool on the same line's pool
// content observe each other's removals in PRNG-call order. Exported so
// pkgs/validate can replay the same pool mechanics during a dry
// validation pass.
func ApplyTake(line string, pool *[]string, prng world.PRNG) (string, error) {
	segments := strings.Split(line, "!!take")
	if len(segments) == 1 {
		return line, nil
	}
	var b strings.Builder
	b.WriteString(segments[0])
	for _, segment := range segments[1:] {
		length := len(*pool)
		if length == 0 {
			return "", fmt.Errorf("tried to !!take on an empty !!pool in line %s", line)
		}
		index := prng.GenRange(length)
		item := (*pool)[index]
		*pool = append((*pool)[:index], (*pool)[index+1:]...)
		b.WriteString(item)
		b.WriteString(segment)
	}
	return b.String(), nil
}

// ReadBalanced scans forward from start (the character after an opening
// paren already consumed) for the matching closing paren, accounting for
// nested parens; returns the index of that closing paren, or false if the
// line ends unbalanced. Exported so pkgs/seed's $WHEREIS/$HOWMANY macro
// scanner can reuse the same balanced-paren rule as $PARAM.
func ReadBalanced(s string, start int) (int, bool) {
	depth := 1
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return i, true
		}
	}
	return 0, false
}

// ApplyParameters iteratively scans for "$PARAM(" and its matching ")",
// replacing each occurrence with the named parameter's value.
func ApplyParameters(line string, parameters map[string]string) (string, error) {
	const marker = "$PARAM("
	last := 0
	for {
		rel := strings.Index(line[last:], marker)
		if rel < 0 {
			return line, nil
		}
		start := last + rel
		afterParen := start + len(marker)
		end, ok := ReadBalanced(line, afterParen)
		if !ok {
			return line, nil
		}
		identifier := strings.TrimSpace(line[afterParen:end])
		value, ok := parameters[identifier]
		if !ok {
			return "", fmt.Errorf("unknown parameter %s", identifier)
		}
		line = line[:start] + value + line[end+1:]
		last = start + len(value)
	}
}

// expandBraces expands every "{a-b}" character-range brace group in s
// into its cross product of literal variants, left to right.
func expandBraces(s string) ([]string, error) {
	variants := []string{s}
	for {
		var next []string
		changed := false
		for _, variant := range variants {
			end := strings.IndexByte(variant, '}')
			if end < 0 {
				next = append(next, variant)
				continue
			}
			start := strings.LastIndexByte(variant[:end], '{')
			if start < 0 {
				next = append(next, variant)
				continue
			}
			bounds := strings.SplitN(variant[start+1:end], "-", 2)
			lower := bounds[0]
			upper := lower
			if len(bounds) == 2 {
				upper = bounds[1]
			}
			if len(lower) != 1 || len(upper) != 1 {
				return nil, fmt.Errorf("invalid range boundary %s-%s", lower, upper)
			}
			if lower[0] > upper[0] {
				return nil, fmt.Errorf("invalid range boundary %s-%s", lower, upper)
			}
			changed = true
			for c := lower[0]; c <= upper[0]; c++ {
				next = append(next, variant[:start]+string(c)+variant[end+1:])
			}
		}
		if !changed {
			return variants, nil
		}
		variants = next
	}
}

// PoolCommand expands a "!!pool [Nx]TEMPLATE" directive's brace ranges and
// appends each resulting variant N times to pool.
func PoolCommand(arg string, pool *[]string) error {
	count, template := ParseHeaderCount(arg)
	variants, err := expandBraces(template)
	if err != nil {
		return err
	}
	for i := uint16(0); i < count; i++ {
		*pool = append(*pool, variants...)
	}
	return nil
}

// ParseHeaderCount reads an optional leading "Nx" multiplier, defaulting
// to 1 when absent or malformed; this mirrors value.ParseCount but lives
// here because !!pool and !!addpool operate on raw template text rather
// than a parsed item code.
func ParseHeaderCount(s string) (uint16, string) {
	if idx := strings.IndexByte(s, 'x'); idx >= 0 {
		if n, err := strconv.ParseUint(strings.TrimSpace(s[:idx]), 10, 16); err == nil {
			return uint16(n), s[idx+1:]
		}
	}
	return 1, s
}
