package validate

import (
	"testing"

	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintStableAcrossCalls(t *testing.T) {
	state, err := value.ParseUberState("9|1=1")
	require.NoError(t, err)
	assert.Equal(t, Fingerprint(state), Fingerprint(state))
}

func TestFingerprintDiffersAcrossStates(t *testing.T) {
	a, _ := value.ParseUberState("9|1=1")
	b, _ := value.ParseUberState("9|1=2")
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestDedupByFingerprintDropsRepeats(t *testing.T) {
	a, _ := value.ParseUberState("9|1=1")
	out := dedupByFingerprint([]value.UberState{a, a, a})
	assert.Equal(t, []value.UberState{a}, out)
}

func TestDigestStableForSameInput(t *testing.T) {
	states := []value.UberState{
		{Identifier: value.UberIdentifier{Group: 9, ID: 1}, Value: "1"},
		{Identifier: value.UberIdentifier{Group: 9, ID: 2}, Value: ""},
	}
	d1, err := Canonicalize("MyHeader", states).Digest()
	require.NoError(t, err)
	d2, err := Canonicalize("MyHeader", states).Digest()
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestDigestDiffersAcrossHeaderNames(t *testing.T) {
	states := []value.UberState{{Identifier: value.UberIdentifier{Group: 9, ID: 1}, Value: "1"}}
	d1, err := Canonicalize("HeaderA", states).Digest()
	require.NoError(t, err)
	d2, err := Canonicalize("HeaderB", states).Digest()
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}
