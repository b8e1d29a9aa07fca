package validate

import (
	"testing"

	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderCollectsGroup9PickupStates(t *testing.T) {
	src := "9|1|0|1\n9|2|0|1\n"
	occupied, _, err := Header("test", src, nil)
	require.NoError(t, err)

	a, _ := value.ParseUberState("9|1")
	b, _ := value.ParseUberState("9|2")
	assert.Equal(t, []value.UberState{a, b}, occupied)
}

func TestHeaderIgnoresNonGroup9Pickups(t *testing.T) {
	src := "5|1|0|1\n"
	occupied, _, err := Header("test", src, nil)
	require.NoError(t, err)
	assert.Empty(t, occupied)
}

func TestHeaderCollapsesRelativeAdjustmentsToBareEntry(t *testing.T) {
	// the pickup trigger itself reserves (9,5) bare; the set-uber-state
	// command on the second pickup targets the same identifier with a
	// concrete value, which must collapse away once a bare entry exists.
	src := "9|5|0|1\n9|5|8|9|5|int|3\n"
	occupied, _, err := Header("test", src, nil)
	require.NoError(t, err)

	bare, _ := value.ParseUberState("9|5")
	assert.Equal(t, []value.UberState{bare}, occupied)
}

func TestHeaderStopCommandOutsideGroup9Errors(t *testing.T) {
	src := "5|1|4|4|9|1|1\n"
	_, _, err := Header("test", src, nil)
	require.Error(t, err)
}

func TestHeaderExcludesRecordedInContext(t *testing.T) {
	src := "!!exclude OtherHeader\n"
	_, excludes, err := Header("MyHeader", src, nil)
	require.NoError(t, err)
	assert.Equal(t, "MyHeader", excludes["OtherHeader"])
}

func TestHeaderTimerReservesIdentifierWithSentinelValue(t *testing.T) {
	src := "9|1|4|9|9|5\n"
	occupied, _, err := Header("test", src, nil)
	require.NoError(t, err)

	trigger, _ := value.ParseUberState("9|1")
	timer, _ := value.ParseUberState("9|5")
	assert.Equal(t, []value.UberState{trigger, timer}, occupied)
}
