package parser

import (
	"testing"

	"github.com/ori-rando/seedcore/pkgs/ast"
	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinitionAndRegion(t *testing.T) {
	src := "definition CanFight\n" +
		"	Bash\n" +
		"region MarshRegion\n" +
		"	CanFight\n"
	areas, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, areas.Definitions, 1)
	assert.Equal(t, "CanFight", areas.Definitions[0].Identifier)
	require.Len(t, areas.Definitions[0].Requirements.Lines, 1)
	assert.Equal(t, ast.ReqSkill, areas.Definitions[0].Requirements.Lines[0].Ands[0].Kind)

	require.Len(t, areas.Regions, 1)
	assert.Equal(t, "MarshRegion", areas.Regions[0].Identifier)
	assert.Equal(t, ast.ReqDefinition, areas.Regions[0].Requirements.Lines[0].Ands[0].Kind)
	assert.Equal(t, "CanFight", areas.Regions[0].Requirements.Lines[0].Ands[0].Name)
}

func TestParseAnchorWithPositionRefillAndConnection(t *testing.T) {
	src := "anchor MarshSpawn position 12,34\n" +
		"	refill Full\n" +
		"	state MarshOpened free\n"
	areas, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, areas.Anchors, 1)
	a := areas.Anchors[0]
	require.NotNil(t, a.Position)
	assert.Equal(t, float32(12), a.Position.X())
	assert.Equal(t, float32(34), a.Position.Y())
	require.Len(t, a.Refills, 1)
	assert.Equal(t, ast.RefillFull, a.Refills[0].Kind)
	require.Len(t, a.Connections, 1)
	assert.Equal(t, ast.ConnState, a.Connections[0].Kind)
	assert.Equal(t, "MarshOpened", a.Connections[0].Identifier)
	assert.Nil(t, a.Connections[0].Requirements)
}

func TestParseAndOrAndGroup(t *testing.T) {
	src := "definition D1\n" +
		"	Bash, Dash\n" +
		"	Grapple | Glide\n" +
		"	Launch group\n" +
		"		Bash\n" +
		"		Dash\n"
	areas, err := Parse(src)
	require.NoError(t, err)
	lines := areas.Definitions[0].Requirements.Lines
	require.Len(t, lines, 3)
	assert.Len(t, lines[0].Ands, 2)
	assert.Len(t, lines[1].Ors, 2)
	require.NotNil(t, lines[2].Group)
	assert.Len(t, lines[2].Group.Lines, 2)
}

func TestParseAmountRequirement(t *testing.T) {
	src := "definition D1\n" +
		"	Health=3\n"
	areas, err := Parse(src)
	require.NoError(t, err)
	req := areas.Definitions[0].Requirements.Lines[0].Ands[0]
	assert.Equal(t, ast.ReqResource, req.Kind)
	assert.Equal(t, value.HealthFragment, req.Resource)
	assert.Equal(t, uint16(3), req.Amount)
}

func TestParseBareAmountKeywordIsWrongAmount(t *testing.T) {
	src := "definition D1\n" +
		"	Health\n"
	_, err := Parse(src)
	require.Error(t, err)
	pe, ok := err.(ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrWrongAmount, pe.Kind)
}

func TestParseUnknownRequirementSuggestsClosestMatch(t *testing.T) {
	src := "definition D1\n" +
		"	Hamer\n" // missing a letter from "Hammer"
	_, err := Parse(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
}

func TestParseStateDefinitionPathsetPriority(t *testing.T) {
	// "Shared" is declared as both a state and a pathset entry; pathsets
	// shadow states in the keyword resolution order.
	src := "pathsets Difficulty\n" +
		"	Shared\n" +
		"anchor A\n" +
		"	state Shared\n" +
		"		free\n" +
		"definition D1\n" +
		"	Shared\n"
	areas, err := Parse(src)
	require.NoError(t, err)
	req := areas.Definitions[0].Requirements.Lines[0].Ands[0]
	assert.Equal(t, ast.ReqPathset, req.Kind)
	assert.Equal(t, "Shared", req.Name)
}

func TestParsePathsetsBlockWithDescription(t *testing.T) {
	src := "pathsets Difficulty\n" +
		"	Hard group\n" +
		"		Requires precise movement\n" +
		"		across narrow gaps\n" +
		"definition Uses\n" +
		"	Hard\n"
	areas, err := Parse(src)
	require.NoError(t, err)
	req := areas.Definitions[0].Requirements.Lines[0].Ands[0]
	assert.Equal(t, ast.ReqPathset, req.Kind)
	assert.Equal(t, "Hard", req.Name)
}

func TestParseCombatRequirementCarriesOpaqueString(t *testing.T) {
	src := "definition D1\n" +
		"	Combat=3\n"
	areas, err := Parse(src)
	require.NoError(t, err)
	req := areas.Definitions[0].Requirements.Lines[0].Ands[0]
	assert.Equal(t, ast.ReqCombat, req.Kind)
	assert.Equal(t, "3", req.Name)
}
