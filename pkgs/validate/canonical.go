package validate

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ori-rando/seedcore/pkgs/value"
)

// CanonicalOccupiedSet is the canonical, hash-stable form of a header's
// occupied-state set: a fixed format version plus the header's own name
// (so two different headers occupying the same states never collide)
// and the sorted, deduplicated states themselves, field-qualified rather
// than carried as value.UberState so the digest is insulated from any
// future change to that type's own field order or tags.
type CanonicalOccupiedSet struct {
	Version uint8
	Header  string
	States  []CanonicalUberState
}

// CanonicalUberState is one occupied state in canonical form.
type CanonicalUberState struct {
	Group uint16
	ID    uint32
	Value string
}

// Canonicalize converts a header name and its already sorted,
// deduplicated occupied-state set (the output of Header) into canonical
// form ready for hashing.
func Canonicalize(header string, states []value.UberState) *CanonicalOccupiedSet {
	cs := &CanonicalOccupiedSet{
		Version: 1,
		Header:  header,
		States:  make([]CanonicalUberState, len(states)),
	}
	for i, s := range states {
		cs.States[i] = CanonicalUberState{Group: s.Identifier.Group, ID: s.Identifier.ID, Value: s.Value}
	}
	return cs
}

// MarshalBinary produces deterministic CBOR encoding of the canonical set.
func (cs *CanonicalOccupiedSet) MarshalBinary() ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	// type alias avoids infinite recursion: cbor would call MarshalBinary
	// back on *CanonicalOccupiedSet otherwise.
	type alias CanonicalOccupiedSet
	data, err := encMode.Marshal((*alias)(cs))
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// Digest computes the SHA-256 hash of the canonical set's CBOR encoding.
// Two validator runs over the same header name and occupied-state set
// produce a byte-identical digest, letting collision detection across
// many headers compare a single 32-byte value instead of diffing slices.
func (cs *CanonicalOccupiedSet) Digest() ([32]byte, error) {
	data, err := cs.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}
