package seed

import (
	"testing"

	"github.com/ori-rando/seedcore/internal/testworld"
	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereIsResolvesSpawnSentinel(t *testing.T) {
	seeds := []string{"3|0|0|1\n"}
	graph := &testworld.Graph{}
	settings := testworld.StaticSettings{}

	zone, err := WhereIs(`0\|1`, 0, seeds, graph, settings)
	require.NoError(t, err)
	assert.Equal(t, "Spawn", zone)
}

func TestWhereIsResolvesZoneFromGraphNode(t *testing.T) {
	state, err := value.ParseUberState("5|10")
	require.NoError(t, err)
	graph := &testworld.Graph{NodeList: []testworld.Node{
		{ID: "HollowPickup", InZone: value.Hollow, State: state},
	}}
	seeds := []string{"5|10|2|8\n"}
	settings := testworld.StaticSettings{}

	zone, err := WhereIs(`2\|8`, 0, seeds, graph, settings)
	require.NoError(t, err)
	assert.Equal(t, "Hollow", zone)
}

func TestWhereIsReturnsUnknownWhenNoMatch(t *testing.T) {
	seeds := []string{"5|10|2|8\n"}
	graph := &testworld.Graph{}
	settings := testworld.StaticSettings{}

	zone, err := WhereIs(`9\|9`, 0, seeds, graph, settings)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", zone)
}

func TestWhereIsResolvesSharedCellAcrossWorlds(t *testing.T) {
	// world 0 holds a pickup forwarding into multiworld shared cell 42;
	// world 1 is the one that actually sets that cell, inside Depths.
	state, err := value.ParseUberState("5|20")
	require.NoError(t, err)
	graph := &testworld.Graph{NodeList: []testworld.Node{
		{ID: "DepthsOrigin", InZone: value.Depths, State: state},
	}}
	seeds := []string{
		"12|42|0|50\n",
		"5|20|8|12|42|bool|true\n",
	}
	settings := testworld.StaticSettings{PlayerNames: []string{"Alice", "Bob"}}

	zone, err := WhereIs(`0\|50`, 0, seeds, graph, settings)
	require.NoError(t, err)
	assert.Equal(t, "Bob's Depths", zone)
}

func TestHowManyCollectsMatchingStatesInZone(t *testing.T) {
	a, _ := value.ParseUberState("5|1")
	b, _ := value.ParseUberState("5|2")
	graph := &testworld.Graph{NodeList: []testworld.Node{
		{ID: "A", InZone: value.Hollow, State: a},
		{ID: "B", InZone: value.Hollow, State: b},
	}}
	seeds := []string{"5|1|2|8\n5|2|2|9\n"}

	locations, err := HowMany(`2\|8`, value.Hollow, 0, seeds, graph)
	require.NoError(t, err)
	assert.Equal(t, []value.UberState{a}, locations)
}

func TestPostprocessExpandsWhereIsMacro(t *testing.T) {
	state, err := value.ParseUberState("5|10")
	require.NoError(t, err)
	graph := &testworld.Graph{NodeList: []testworld.Node{
		{ID: "HollowPickup", InZone: value.Hollow, State: state},
	}}
	seeds := []string{"5|10|2|8\n6|found at $WHEREIS(2\\|8)\n"}
	settings := testworld.StaticSettings{}

	out, err := Postprocess(seeds, graph, settings)
	require.NoError(t, err)
	assert.Contains(t, out[0], "found at Hollow")
}

func TestPostprocessExpandsHowManyMacro(t *testing.T) {
	a, _ := value.ParseUberState("5|1")
	graph := &testworld.Graph{NodeList: []testworld.Node{
		{ID: "A", InZone: value.Hollow, State: a},
	}}
	seeds := []string{"5|1|2|8\n5|2|6|count $HOWMANY(1, 2\\|8)\n"}
	settings := testworld.StaticSettings{}

	out, err := Postprocess(seeds, graph, settings)
	require.NoError(t, err)
	assert.Contains(t, out[0], "count $[15|4|5,1]")
}
