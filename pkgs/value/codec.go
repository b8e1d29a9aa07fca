package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse decodes a pipe-delimited pickup-script item code (§4.D). Tag 7 is
// reserved and always invalid; tags 12/13 (zone/checkable hints) are
// deprecated and always return an error naming the deprecation.
func Parse(s string) (Item, error) {
	item, err := parseParts(strings.Split(strings.TrimSpace(s), "|"))
	if err != nil {
		return Item{}, fmt.Errorf("%w in item %s", err, s)
	}
	return item, nil
}

func parseParts(parts []string) (Item, error) {
	if len(parts) == 0 || parts[0] == "" {
		return Item{}, fmt.Errorf("tried to parse empty item")
	}
	tag, rest := parts[0], parts[1:]
	switch tag {
	case "0":
		return parseSignedAmount(rest, ItemSpiritLight, ItemRemoveSpiritLight)
	case "1":
		return parseResource(rest)
	case "2":
		return parseSkill(rest)
	case "3":
		return parseShard(rest)
	case "4":
		return parseCommand(rest)
	case "5":
		return parseTeleporter(rest)
	case "6":
		return parseMessage(rest)
	case "7":
		return Item{}, fmt.Errorf("invalid item type")
	case "8":
		return parseSetUberState(rest)
	case "9":
		return parseWorldEvent(rest)
	case "10":
		return parseBonusItem(rest)
	case "11":
		return parseBonusUpgrade(rest)
	case "12":
		return Item{}, fmt.Errorf("Hint Items are deprecated")
	case "13":
		return Item{}, fmt.Errorf("Hint Items are deprecated")
	case "14":
		return parseRelic(rest)
	case "15":
		return parseSysMessageItem(rest)
	case "16":
		return parseWheelItem(rest)
	case "17":
		return parseShopItem(rest)
	default:
		return Item{}, fmt.Errorf("invalid item type")
	}
}

func endOfItem(parts []string) error {
	if len(parts) != 0 {
		return fmt.Errorf("too many parts")
	}
	return nil
}

func parseSignedAmount(parts []string, positive, negative ItemKind) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing amount")
	}
	raw := parts[0]
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	if strings.HasPrefix(raw, "-") {
		amount, err := strconv.ParseUint(raw[1:], 10, 16)
		if err != nil {
			return Item{}, fmt.Errorf("invalid amount")
		}
		return Item{Kind: negative, Amount: int16(amount)}, nil
	}
	amount, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return Item{}, fmt.Errorf("invalid amount")
	}
	return Item{Kind: positive, Amount: int16(amount)}, nil
}

func parseResource(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing resource type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Item{}, fmt.Errorf("invalid resource type")
	}
	resource, err := ParseResource(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid resource type")
	}
	return Item{Kind: ItemResource, Resource: resource}, nil
}

func parseSkill(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing skill type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	raw := parts[0]
	remove := strings.HasPrefix(raw, "-")
	if remove {
		raw = raw[1:]
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return Item{}, fmt.Errorf("invalid skill type")
	}
	skill, err := ParseSkill(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid skill type")
	}
	if remove {
		return Item{Kind: ItemRemoveSkill, Skill: skill}, nil
	}
	return Item{Kind: ItemSkill, Skill: skill}, nil
}

func parseShard(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing shard type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	raw := parts[0]
	remove := strings.HasPrefix(raw, "-")
	if remove {
		raw = raw[1:]
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return Item{}, fmt.Errorf("invalid shard type")
	}
	shard, err := ParseShard(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid shard type")
	}
	if remove {
		return Item{Kind: ItemRemoveShard, Shard: shard}, nil
	}
	return Item{Kind: ItemShard, Shard: shard}, nil
}

func parseTeleporter(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing teleporter type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	raw := parts[0]
	remove := strings.HasPrefix(raw, "-")
	if remove {
		raw = raw[1:]
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return Item{}, fmt.Errorf("invalid teleporter type")
	}
	tp, err := ParseTeleporter(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid teleporter type")
	}
	if remove {
		return Item{Kind: ItemRemoveTeleporter, Teleporter: tp}, nil
	}
	return Item{Kind: ItemTeleporter, Teleporter: tp}, nil
}

func parseMessage(parts []string) (Item, error) {
	return Item{Kind: ItemMessage, Message: strings.Join(parts, "|")}, nil
}

func parseWorldEvent(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing world event type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	raw := parts[0]
	remove := strings.HasPrefix(raw, "-")
	if remove {
		raw = raw[1:]
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return Item{}, fmt.Errorf("invalid world event type")
	}
	if id != 0 {
		return Item{}, fmt.Errorf("invalid world event type")
	}
	if remove {
		return Item{Kind: ItemWorldEvent, ZoneID: -1}, nil
	}
	return Item{Kind: ItemWorldEvent, ZoneID: 0}, nil
}

func parseBonusItem(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing bonus item type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Item{}, fmt.Errorf("invalid bonus item type")
	}
	b, err := ParseBonusItem(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid bonus item type")
	}
	return Item{Kind: ItemBonusItem, BonusItem: b}, nil
}

func parseBonusUpgrade(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing bonus upgrade type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Item{}, fmt.Errorf("invalid bonus upgrade type")
	}
	b, err := ParseBonusUpgrade(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid bonus upgrade type")
	}
	return Item{Kind: ItemBonusUpgrade, BonusUpgrade: b}, nil
}

func parseRelic(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing relic zone")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Item{}, fmt.Errorf("invalid relic zone")
	}
	zone, err := ParseZone(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid relic zone")
	}
	return Item{Kind: ItemRelic, RelicZone: zone}, nil
}

func parseSysMessageItem(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing sys message type")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Item{}, err
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Item{}, fmt.Errorf("invalid sys message type")
	}
	m, err := ParseSysMessage(id)
	if err != nil {
		return Item{}, fmt.Errorf("invalid sys message type")
	}
	return Item{Kind: ItemSysMessage, SysMessage: m}, nil
}

// parseCount reads an optional leading "Nx" multiplier off an item code,
// defaulting to 1 when absent or malformed.
func parseCount(s string) (count uint16, rest string) {
	if idx := strings.IndexByte(s, 'x'); idx >= 0 {
		if n, err := strconv.ParseUint(strings.TrimSpace(s[:idx]), 10, 16); err == nil {
			return uint16(n), s[idx+1:]
		}
	}
	return 1, s
}

// ParseCount is the exported form of parseCount, used by the header
// preprocessor to read the "Nx" multiplier of an !!add or !!remove
// argument.
func ParseCount(s string) (count uint16, rest string) {
	return parseCount(s)
}

// Emit renders an Item back to pipe-delimited item-code text.
func (i Item) Emit() string {
	switch i.Kind {
	case ItemSpiritLight:
		return fmt.Sprintf("0|%d", i.Amount)
	case ItemRemoveSpiritLight:
		return fmt.Sprintf("0|-%d", i.Amount)
	case ItemResource:
		return fmt.Sprintf("1|%d", int(i.Resource))
	case ItemSkill:
		return fmt.Sprintf("2|%d", int(i.Skill))
	case ItemRemoveSkill:
		return fmt.Sprintf("2|-%d", int(i.Skill))
	case ItemShard:
		return fmt.Sprintf("3|%d", int(i.Shard))
	case ItemRemoveShard:
		return fmt.Sprintf("3|-%d", int(i.Shard))
	case ItemCommand:
		return fmt.Sprintf("4|%s", i.Command.Emit())
	case ItemTeleporter:
		return fmt.Sprintf("5|%d", int(i.Teleporter))
	case ItemRemoveTeleporter:
		return fmt.Sprintf("5|-%d", int(i.Teleporter))
	case ItemMessage:
		return fmt.Sprintf("6|%s", i.Message)
	case ItemUberState:
		return fmt.Sprintf("8|%s", i.UberState.Emit())
	case ItemWorldEvent:
		if i.ZoneID < 0 {
			return "9|-0"
		}
		return "9|0"
	case ItemBonusItem:
		return fmt.Sprintf("10|%d", int(i.BonusItem))
	case ItemBonusUpgrade:
		return fmt.Sprintf("11|%d", int(i.BonusUpgrade))
	case ItemRelic:
		return fmt.Sprintf("14|%d", int(i.RelicZone))
	case ItemSysMessage:
		return fmt.Sprintf("15|%d", int(i.SysMessage))
	case ItemWheelCommand:
		return fmt.Sprintf("16|%s", i.WheelCommand.Emit())
	case ItemShopCommand:
		return fmt.Sprintf("17|%s", i.ShopCommand.Emit())
	default:
		return fmt.Sprintf("invalid-item(%d)", int(i.Kind))
	}
}

// Emit renders a UberStateItem back to its set-uber-state operand text.
func (u UberStateItem) Emit() string {
	var b strings.Builder
	b.WriteString(u.Identifier.String())
	b.WriteByte('|')
	b.WriteString(uberTypeName(u.Type))
	b.WriteByte('|')
	if u.Signed {
		if u.Sign == SetAdd {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	b.WriteString(u.Operator.String())
	if u.SkipIfSet {
		b.WriteString("|skip=1")
	}
	return b.String()
}

func uberTypeName(t UberType) string {
	switch t {
	case UberBool:
		return "bool"
	case UberByte:
		return "byte"
	case UberInt:
		return "int"
	case UberFloat:
		return "float"
	case UberTeleporter:
		return "teleporter"
	default:
		return "bool"
	}
}
