package validate

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"

	"github.com/ori-rando/seedcore/pkgs/value"
)

// fingerprintKey is the fixed, process-wide BLAKE2s-128 key occupied
// uber-states are fingerprinted under. It is not a secret: the goal is a
// stable dedup key across validator runs, not confidentiality, so unlike
// a keyed ID factory's run key this one is a compile-time constant
// rather than generated per invocation.
var fingerprintKey = [32]byte{
	'o', 'r', 'i', '-', 'r', 'a', 'n', 'd',
	'o', 's', 'e', 'e', 'd', 'c', 'o', 'r',
	'e', '-', 'o', 'c', 'c', 'u', 'p', 'i',
	'e', 'd', '-', 's', 't', 'a', 't', 'e',
}

// Fingerprint computes a stable 128-bit dedup key for an occupied
// uber-state: a BLAKE2s-128 PRF, keyed by fingerprintKey, over the
// BLAKE2b-256 digest of the state's wire form. Hashing the wire form
// first keeps the PRF's input length constant regardless of how long the
// state's value text is.
func Fingerprint(state value.UberState) [16]byte {
	digest := blake2b.Sum256([]byte(state.String()))
	mac, err := blake2s.New128(fingerprintKey[:])
	if err != nil {
		panic(fmt.Sprintf("validate: failed to construct blake2s-128: %v", err))
	}
	mac.Write(digest[:])
	var out [16]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// dedupByFingerprint drops every state whose fingerprint has already been
// seen, preserving first-occurrence order. Unlike a sort-then-dedup pass
// this needs no ordering up front, so it runs once over the raw,
// unsorted occupied-state stream before the final lexical sort that
// produces the collapse step's canonical order.
func dedupByFingerprint(states []value.UberState) []value.UberState {
	seen := make(map[[16]byte]struct{}, len(states))
	out := states[:0]
	for _, s := range states {
		fp := Fingerprint(s)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, s)
	}
	return out
}
