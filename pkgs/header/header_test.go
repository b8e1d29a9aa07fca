package header

import (
	"strings"
	"testing"

	"github.com/ori-rando/seedcore/internal/testworld"
	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessAddGrantsItemToWorldPool(t *testing.T) {
	w := testworld.New(nil)
	_, _, err := Process("test", "!!add 2x1|2\n", w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)

	ore, err := value.Parse("1|2")
	require.NoError(t, err)
	assert.Equal(t, 2, w.Pool()[ore])
}

func TestProcessRemoveOverflowsIntoNegativeInventory(t *testing.T) {
	w := testworld.New(nil)
	_, ctx, err := Process("test", "!!remove 1|2\n", w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	require.Len(t, ctx.NegativeInventory, 1)

	ore, _ := value.Parse("1|2")
	assert.Equal(t, ore, ctx.NegativeInventory[0])
}

func TestProcessPickupPreplacesAndDepletesPool(t *testing.T) {
	w := testworld.New(nil)
	src := "!!add 1|2\n3|1|1|2\n"
	_, _, err := Process("test", src, w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)

	state, err := value.ParseUberState("3|1")
	require.NoError(t, err)
	ore, _ := value.Parse("1|2")
	assert.Equal(t, ore, w.Placements()[state])
	assert.Equal(t, 0, w.PoolSize())
}

func TestProcessTakeExpansionConsumesPool(t *testing.T) {
	w := testworld.New(nil)
	src := "!!pool 1|2\n!!pool 1|3\n!name: !!take\n"
	processed, _, err := Process("test", src, w, &testworld.CyclicPRNG{}, nil)
	require.NoError(t, err)
	// CyclicPRNG's first draw is index 0: the first pool entry (1|2) is taken.
	assert.Contains(t, processed, "name: 1|2")
}

func TestProcessParameterSubstitution(t *testing.T) {
	w := testworld.New(nil)
	src := "!!parameter Difficulty easy\n!set to $PARAM(Difficulty)\n"
	processed, _, err := Process("test", src, w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	assert.Contains(t, processed, "set to easy")
}

func TestProcessParameterOverride(t *testing.T) {
	w := testworld.New(nil)
	src := "!!parameter Difficulty easy\n!set to $PARAM(Difficulty)\n"
	processed, _, err := Process("test", src, w, testworld.SequentialPRNG{}, map[string]string{"Difficulty": "hard"})
	require.NoError(t, err)
	assert.Contains(t, processed, "set to hard")
}

func TestProcessIfFalseSkipsUntilEndif(t *testing.T) {
	w := testworld.New(nil)
	src := "!!parameter Difficulty easy\n!!if Difficulty hard\nkeepme\n!!endif\n!kept\n"
	processed, _, err := Process("test", src, w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	assert.NotContains(t, processed, "keepme")
	assert.Contains(t, processed, "kept")
}

func TestProcessEndifWithoutIfErrors(t *testing.T) {
	w := testworld.New(nil)
	_, _, err := Process("test", "!!endif\n", w, testworld.SequentialPRNG{}, nil)
	require.Error(t, err)
}

func TestProcessUnknownDirectiveErrors(t *testing.T) {
	w := testworld.New(nil)
	_, _, err := Process("test", "!!bogus\n", w, testworld.SequentialPRNG{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestProcessCommentAndSkipValidateFiltering(t *testing.T) {
	w := testworld.New(nil)
	src := "//// dropped entirely\n!kept line // trailing comment\nskipped line // note skip-validate\n"
	processed, _, err := Process("test", src, w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	assert.NotContains(t, processed, "dropped entirely")
	assert.Contains(t, processed, "kept line // trailing comment")
	assert.NotContains(t, processed, "skipped line")
}

func TestProcessFlagsAccumulate(t *testing.T) {
	w := testworld.New(nil)
	_, ctx, err := Process("test", "Flags: MapstoneLock, WorldTour\n", w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"MapstoneLock", "WorldTour"}, ctx.Flags)
}

func TestProcessSetRecordsUniverseSetWhenNodeExists(t *testing.T) {
	graph := &testworld.Graph{NodeList: []testworld.Node{{ID: "MarshSpawn.HasOpenedDoor", Idx: 0}}}
	w := testworld.New(graph)
	_, ctx, err := Process("test", "!!set MarshSpawn.HasOpenedDoor\n", w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"MarshSpawn.HasOpenedDoor"}, ctx.Sets)
}

func TestProcessSetUnknownNodeErrorsWhenGraphPopulated(t *testing.T) {
	graph := &testworld.Graph{NodeList: []testworld.Node{{ID: "Other", Idx: 0}}}
	w := testworld.New(graph)
	_, _, err := Process("test", "!!set Missing\n", w, testworld.SequentialPRNG{}, nil)
	require.Error(t, err)
}

func TestProcessSpawnSentinelGuardsAgainstDoubleFill(t *testing.T) {
	target, err := value.ParseUberState("5|50")
	require.NoError(t, err)
	graph := &testworld.Graph{NodeList: []testworld.Node{{ID: "Target", Placeable: true, State: target}}}
	w := testworld.New(graph)

	src := "3|0|8|5|50|bool|true\n"
	_, _, err = Process("test", src, w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)

	null := value.Item{Kind: value.ItemMessage, Message: "f=0|quiet|noclear"}
	assert.Equal(t, null, w.Placements()[target])
}

func TestProcessIncludeAndExcludeRecordedInContext(t *testing.T) {
	w := testworld.New(nil)
	_, ctx, err := Process("HeaderA", "!!include OtherHeader\n!!exclude Conflict\n", w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"OtherHeader.wotwrh"}, ctx.Dependencies)
	assert.Equal(t, "HeaderA", ctx.Excludes["Conflict"])
}

func TestProcessNameDisplayPriceIconDirectives(t *testing.T) {
	w := testworld.New(nil)
	src := strings.Join([]string{
		"!!name 1|2 Ore Fragment",
		"!!display 1|2 Ore",
		"!!price 1|2 150",
		"!!icon 1|2 shard:3",
		"",
	}, "\n")
	_, ctx, err := Process("test", src, w, testworld.SequentialPRNG{}, nil)
	require.NoError(t, err)
	details := ctx.CustomItems["1|2"]
	require.NotNil(t, details)
	assert.Equal(t, "Ore Fragment", details.Name)
	assert.Equal(t, "Ore", details.Display)
	assert.Equal(t, uint16(150), details.Price)
	assert.Equal(t, value.Icon{Kind: value.IconShard, ID: 3}, details.Icon)
}
