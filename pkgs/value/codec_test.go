package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResourceRoundtrip(t *testing.T) {
	item, err := Parse("1|2")
	require.NoError(t, err)
	require.Equal(t, ItemResource, item.Kind)
	require.Equal(t, Ore, item.Resource)
	require.Equal(t, "1|2", item.Emit())
}

func TestParseResourceRejectsUnknownID(t *testing.T) {
	_, err := Parse("1|5")
	require.Error(t, err)
}

func TestParseSkillAliasAncestralLight(t *testing.T) {
	item, err := Parse("2|120")
	require.NoError(t, err)
	require.Equal(t, AncestralLight, item.Skill)

	item2, err := Parse("2|121")
	require.NoError(t, err)
	require.Equal(t, AncestralLight, item2.Skill)
}

func TestParseSkillRejectsGap(t *testing.T) {
	for _, id := range []string{"2|119", "2|14", "2|24", "2|25"} {
		_, err := Parse(id)
		require.Errorf(t, err, "expected %s to be rejected", id)
	}
}

func TestParseSkillRejectsOutOfRange(t *testing.T) {
	_, err := Parse("2|200")
	require.Error(t, err)
	_, err = Parse("2|25")
	require.Error(t, err)
}

func TestParseLaunchValid(t *testing.T) {
	item, err := Parse("2|8")
	require.NoError(t, err)
	require.Equal(t, Launch, item.Skill)
}

func TestParseShardLastStand(t *testing.T) {
	item, err := Parse("3|28")
	require.NoError(t, err)
	require.Equal(t, LastStand, item.Shard)
}

func TestParseTeleporterMarsh(t *testing.T) {
	item, err := Parse("5|16")
	require.NoError(t, err)
	require.Equal(t, TpMarsh, item.Teleporter)
}

func TestParseBonusUpgradeRapidHammer(t *testing.T) {
	item, err := Parse("11|0")
	require.NoError(t, err)
	require.Equal(t, RapidHammer, item.BonusUpgrade)
}

func TestParseBonusItemEnergyRegeneration(t *testing.T) {
	item, err := Parse("10|31")
	require.NoError(t, err)
	require.Equal(t, EnergyRegeneration, item.BonusItem)
}

func TestParseReservedTagRejected(t *testing.T) {
	_, err := Parse("7")
	require.Error(t, err)
}

func TestParseHintItemsDeprecated(t *testing.T) {
	_, err := Parse("12")
	require.Error(t, err)
	_, err = Parse("13")
	require.Error(t, err)
}

func TestParseCommandAutosaveRoundtrip(t *testing.T) {
	item, err := Parse("4|0")
	require.NoError(t, err)
	require.Equal(t, CmdAutosave, item.Command.Kind)
	require.Equal(t, "4|0", item.Emit())
}

func TestParseCommandEnableSyncIsNotDisableSync(t *testing.T) {
	item, err := Parse("4|21|1|2")
	require.NoError(t, err)
	require.Equal(t, CmdEnableSync, item.Command.Kind)
	require.Equal(t, "4|21|1|2", item.Emit())
}

func TestParseCommandIfEqualNestsItem(t *testing.T) {
	item, err := Parse("4|17|1|2|3|1|0")
	require.NoError(t, err)
	require.Equal(t, CmdIfEqual, item.Command.Kind)
	require.NotNil(t, item.Command.Item)
	require.Equal(t, ItemResource, item.Command.Item.Kind)
}

func TestParseSetUberStateValue(t *testing.T) {
	item, err := Parse("8|1|2|int|5")
	require.NoError(t, err)
	require.Equal(t, ItemUberState, item.Kind)
	require.Equal(t, OperatorValue, item.UberState.Operator.Kind)
	require.Equal(t, "5", item.UberState.Operator.Literal)
}

func TestParseSetUberStateSignedRejectsBool(t *testing.T) {
	_, err := Parse("8|1|2|bool|+1")
	require.Error(t, err)
}

func TestParseSetUberStatePointer(t *testing.T) {
	item, err := Parse("8|1|2|int|$(3|4)")
	require.NoError(t, err)
	require.Equal(t, OperatorPointer, item.UberState.Operator.Kind)
	require.Equal(t, UberIdentifier{Group: 3, ID: 4}, item.UberState.Operator.Pointer)
}

func TestParseSetUberStateRange(t *testing.T) {
	item, err := Parse("8|1|2|int|[0,5]")
	require.NoError(t, err)
	require.Equal(t, OperatorRange, item.UberState.Operator.Kind)
	require.Equal(t, "0", item.UberState.Operator.Low)
	require.Equal(t, "5", item.UberState.Operator.High)
}

func TestParseWorldEventRejectsNonZero(t *testing.T) {
	_, err := Parse("9|1")
	require.Error(t, err)
}

func TestParseWheelClearAll(t *testing.T) {
	item, err := Parse("16|8")
	require.NoError(t, err)
	require.Equal(t, WheelClearAll, item.WheelCommand.Kind)
}

func TestParseShopSetLocked(t *testing.T) {
	item, err := Parse("17|3|1|2|true")
	require.NoError(t, err)
	require.Equal(t, ShopSetLocked, item.ShopCommand.Kind)
	require.True(t, item.ShopCommand.Locked)
}

func TestParsePositionRejectsNaN(t *testing.T) {
	_, err := NewPosition(float32(0), float32(0))
	require.NoError(t, err)
	_, err = NewPosition(float32(math.NaN()), float32(0))
	require.Error(t, err)
}

func TestParseCountMultiplier(t *testing.T) {
	count, rest := ParseCount("3x1|0")
	require.Equal(t, uint16(3), count)
	require.Equal(t, "1|0", rest)

	count, rest = ParseCount("1|0")
	require.Equal(t, uint16(1), count)
	require.Equal(t, "1|0", rest)
}
