package value

import (
	"fmt"
	"strconv"
)

// parseCommand decodes a tag-4 item's command sub-dispatch (tags 0-28).
func parseCommand(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing command item type")
	}
	tag, rest := parts[0], parts[1:]
	cmd, err := parseCommandByTag(tag, rest)
	if err != nil {
		return Item{}, err
	}
	return Item{Kind: ItemCommand, Command: cmd}, nil
}

func parseCommandByTag(tag string, parts []string) (Command, error) {
	switch tag {
	case "0":
		if err := endOfItem(parts); err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdAutosave}, nil
	case "1":
		return parseCmdResource(parts)
	case "2":
		if err := endOfItem(parts); err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdCheckpoint}, nil
	case "3":
		if err := endOfItem(parts); err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdMagic}, nil
	case "4":
		return parseCmdStop(parts, CmdStopEqual)
	case "5":
		return parseCmdStop(parts, CmdStopGreater)
	case "6":
		return parseCmdStop(parts, CmdStopLess)
	case "7":
		return parseCmdToggle(parts)
	case "8":
		return parseCmdWarp(parts)
	case "9":
		return parseCmdTimer(parts, CmdStartTimer)
	case "10":
		return parseCmdTimer(parts, CmdStopTimer)
	case "11":
		return parseCmdIntercept(parts)
	case "12":
		return parseCmdSetPlayer(parts, CmdSetHealth)
	case "13":
		return parseCmdSetPlayer(parts, CmdSetEnergy)
	case "14":
		return parseCmdSetPlayer(parts, CmdSetSpiritLight)
	case "15":
		return parseCmdEquip(parts)
	case "16":
		return parseCmdAhkSignal(parts)
	case "17":
		return parseCmdIf(parts, CmdIfEqual)
	case "18":
		return parseCmdIf(parts, CmdIfGreater)
	case "19":
		return parseCmdIf(parts, CmdIfLess)
	case "20":
		return parseCmdSync(parts, CmdDisableSync)
	case "21":
		// The EnableSync variant is parsed and emitted correctly here;
		// see DESIGN.md for why this differs from the reference parser.
		return parseCmdSync(parts, CmdEnableSync)
	case "22":
		return parseCmdCreateWarp(parts)
	case "23":
		return parseCmdDestroyWarp(parts)
	case "24":
		return parseCmdIfBox(parts)
	case "25":
		return parseCmdIfSelf(parts, CmdIfSelfEqual)
	case "26":
		return parseCmdIfSelf(parts, CmdIfSelfGreater)
	case "27":
		return parseCmdIfSelf(parts, CmdIfSelfLess)
	case "28":
		return parseCmdUnequip(parts)
	default:
		return Command{}, fmt.Errorf("invalid command type")
	}
}

func parseCmdResource(parts []string) (Command, error) {
	if len(parts) < 2 {
		return Command{}, fmt.Errorf("missing resource type")
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Command{}, fmt.Errorf("invalid resource type")
	}
	resource, err := ParseResource(id)
	if err != nil {
		return Command{}, fmt.Errorf("invalid resource type")
	}
	amount, err := strconv.ParseInt(parts[1], 10, 16)
	if err != nil {
		return Command{}, fmt.Errorf("invalid resource amount")
	}
	if err := endOfItem(parts[2:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdResource, Resource: resource, Amount: int16(amount)}, nil
}

func parseCmdStop(parts []string, kind CommandKind) (Command, error) {
	if len(parts) < 3 {
		return Command{}, fmt.Errorf("missing uber value")
	}
	state, err := ParseUberState(parts[0] + "|" + parts[1] + "=" + parts[2])
	if err != nil {
		return Command{}, err
	}
	if err := endOfItem(parts[3:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, UberState: state}, nil
}

func parseCmdToggle(parts []string) (Command, error) {
	if len(parts) < 2 {
		return Command{}, fmt.Errorf("missing toggle command value")
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Command{}, fmt.Errorf("invalid toggle command type")
	}
	target, err := ParseToggleCommand(id)
	if err != nil {
		return Command{}, fmt.Errorf("invalid toggle command type")
	}
	var on bool
	switch parts[1] {
	case "0":
		on = false
	case "1":
		on = true
	default:
		return Command{}, fmt.Errorf("invalid toggle command value")
	}
	if err := endOfItem(parts[2:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdToggle, Toggle: target, On: on}, nil
}

func parseCmdWarp(parts []string) (Command, error) {
	pos, rest, err := parsePositionPair(parts)
	if err != nil {
		return Command{}, err
	}
	if err := endOfItem(rest); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdWarp, Position: pos}, nil
}

func parsePositionPair(parts []string) (Position, []string, error) {
	if len(parts) < 2 {
		return Position{}, nil, fmt.Errorf("missing x coordinate")
	}
	x, err := strconv.ParseFloat(parts[0], 32)
	if err != nil {
		return Position{}, nil, fmt.Errorf("invalid x coordinate")
	}
	y, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		return Position{}, nil, fmt.Errorf("invalid y coordinate")
	}
	pos, err := NewPosition(float32(x), float32(y))
	if err != nil {
		return Position{}, nil, err
	}
	return pos, parts[2:], nil
}

func parseCmdTimer(parts []string, kind CommandKind) (Command, error) {
	if len(parts) < 2 {
		return Command{}, fmt.Errorf("missing uber id")
	}
	identifier, err := ParseUberIdentifier(parts[0] + "|" + parts[1])
	if err != nil {
		return Command{}, err
	}
	if err := endOfItem(parts[2:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Identifier: identifier}, nil
}

func parseCmdIntercept(parts []string) (Command, error) {
	if len(parts) < 2 {
		return Command{}, fmt.Errorf("missing set")
	}
	intercept, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return Command{}, fmt.Errorf("invalid intercept")
	}
	set, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return Command{}, fmt.Errorf("invalid set")
	}
	if err := endOfItem(parts[2:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdStateRedirect, Intercept: int32(intercept), Set: int32(set)}, nil
}

func parseCmdSetPlayer(parts []string, kind CommandKind) (Command, error) {
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("missing amount")
	}
	amount, err := strconv.ParseInt(parts[0], 10, 16)
	if err != nil {
		return Command{}, fmt.Errorf("invalid amount")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Amount: int16(amount)}, nil
}

func parseCmdEquip(parts []string) (Command, error) {
	if len(parts) < 2 {
		return Command{}, fmt.Errorf("missing ability to equip")
	}
	slot, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || slot > 2 {
		return Command{}, fmt.Errorf("invalid equip slot")
	}
	ability, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return Command{}, fmt.Errorf("invalid ability to equip")
	}
	if err := endOfItem(parts[2:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdEquip, Slot: uint8(slot), Ability: uint16(ability)}, nil
}

func parseCmdAhkSignal(parts []string) (Command, error) {
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("missing ahk signal specifier")
	}
	signal := parts[0]
	if err := endOfItem(parts[1:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdAhkSignal, Signal: signal}, nil
}

func parseCmdIf(parts []string, kind CommandKind) (Command, error) {
	if len(parts) < 3 {
		return Command{}, fmt.Errorf("missing uber value")
	}
	state, err := ParseUberState(parts[0] + "|" + parts[1] + "=" + parts[2])
	if err != nil {
		return Command{}, err
	}
	item, err := parseParts(parts[3:])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, UberState: state, Item: &item}, nil
}

func parseCmdSync(parts []string, kind CommandKind) (Command, error) {
	if len(parts) < 2 {
		return Command{}, fmt.Errorf("missing uber id")
	}
	identifier, err := ParseUberIdentifier(parts[0] + "|" + parts[1])
	if err != nil {
		return Command{}, err
	}
	if err := endOfItem(parts[2:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Identifier: identifier}, nil
}

func parseCmdCreateWarp(parts []string) (Command, error) {
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("missing warp id")
	}
	id, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Command{}, fmt.Errorf("invalid warp id")
	}
	pos, rest, err := parsePositionPair(parts[1:])
	if err != nil {
		return Command{}, err
	}
	if err := endOfItem(rest); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdCreateWarp, WarpID: uint8(id), Position: pos}, nil
}

func parseCmdDestroyWarp(parts []string) (Command, error) {
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("missing warp id")
	}
	id, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Command{}, fmt.Errorf("invalid warp id")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdDestroyWarp, WarpID: uint8(id)}, nil
}

func parseCmdIfBox(parts []string) (Command, error) {
	if len(parts) < 4 {
		return Command{}, fmt.Errorf("missing boundary coordinates")
	}
	p1, rest, err := parsePositionPair(parts)
	if err != nil {
		return Command{}, fmt.Errorf("invalid boundary coordinate")
	}
	p2, rest, err := parsePositionPair(rest)
	if err != nil {
		return Command{}, fmt.Errorf("invalid boundary coordinate")
	}
	item, err := parseParts(rest)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdIfBox, Position1: p1, Position2: p2, Item: &item}, nil
}

func parseCmdIfSelf(parts []string, kind CommandKind) (Command, error) {
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("missing uber value")
	}
	value := parts[0]
	item, err := parseParts(parts[1:])
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Value: value, Item: &item}, nil
}

func parseCmdUnequip(parts []string) (Command, error) {
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("missing ability to unequip")
	}
	ability, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Command{}, fmt.Errorf("invalid ability to unequip")
	}
	if err := endOfItem(parts[1:]); err != nil {
		return Command{}, err
	}
	return Command{Kind: CmdUnequip, Ability: uint16(ability)}, nil
}

// Emit renders a Command back to its tag-4 sub-dispatch text.
func (c Command) Emit() string {
	switch c.Kind {
	case CmdAutosave:
		return "0"
	case CmdResource:
		return fmt.Sprintf("1|%d|%d", int(c.Resource), c.Amount)
	case CmdCheckpoint:
		return "2"
	case CmdMagic:
		return "3"
	case CmdStopEqual:
		return fmt.Sprintf("4|%s", uberStateWire(c.UberState))
	case CmdStopGreater:
		return fmt.Sprintf("5|%s", uberStateWire(c.UberState))
	case CmdStopLess:
		return fmt.Sprintf("6|%s", uberStateWire(c.UberState))
	case CmdToggle:
		on := 0
		if c.On {
			on = 1
		}
		return fmt.Sprintf("7|%d|%d", int(c.Toggle), on)
	case CmdWarp:
		return fmt.Sprintf("8|%s|%s", fmtFloat(c.Position.X()), fmtFloat(c.Position.Y()))
	case CmdStartTimer:
		return fmt.Sprintf("9|%s", c.Identifier)
	case CmdStopTimer:
		return fmt.Sprintf("10|%s", c.Identifier)
	case CmdStateRedirect:
		return fmt.Sprintf("11|%d|%d", c.Intercept, c.Set)
	case CmdSetHealth:
		return fmt.Sprintf("12|%d", c.Amount)
	case CmdSetEnergy:
		return fmt.Sprintf("13|%d", c.Amount)
	case CmdSetSpiritLight:
		return fmt.Sprintf("14|%d", c.Amount)
	case CmdEquip:
		return fmt.Sprintf("15|%d|%d", c.Slot, c.Ability)
	case CmdAhkSignal:
		return fmt.Sprintf("16|%s", c.Signal)
	case CmdIfEqual:
		return fmt.Sprintf("17|%s|%s", uberStateWire(c.UberState), emitChild(c.Item))
	case CmdIfGreater:
		return fmt.Sprintf("18|%s|%s", uberStateWire(c.UberState), emitChild(c.Item))
	case CmdIfLess:
		return fmt.Sprintf("19|%s|%s", uberStateWire(c.UberState), emitChild(c.Item))
	case CmdDisableSync:
		return fmt.Sprintf("20|%s", c.Identifier)
	case CmdEnableSync:
		return fmt.Sprintf("21|%s", c.Identifier)
	case CmdCreateWarp:
		return fmt.Sprintf("22|%d|%s|%s", c.WarpID, fmtFloat(c.Position.X()), fmtFloat(c.Position.Y()))
	case CmdDestroyWarp:
		return fmt.Sprintf("23|%d", c.WarpID)
	case CmdIfBox:
		return fmt.Sprintf("24|%s|%s|%s|%s|%s",
			fmtFloat(c.Position1.X()), fmtFloat(c.Position1.Y()),
			fmtFloat(c.Position2.X()), fmtFloat(c.Position2.Y()), emitChild(c.Item))
	case CmdIfSelfEqual:
		return fmt.Sprintf("25|%s|%s", c.Value, emitChild(c.Item))
	case CmdIfSelfGreater:
		return fmt.Sprintf("26|%s|%s", c.Value, emitChild(c.Item))
	case CmdIfSelfLess:
		return fmt.Sprintf("27|%s|%s", c.Value, emitChild(c.Item))
	case CmdUnequip:
		return fmt.Sprintf("28|%d", c.Ability)
	default:
		return fmt.Sprintf("invalid-command(%d)", int(c.Kind))
	}
}

func emitChild(item *Item) string {
	if item == nil {
		return ""
	}
	return item.Emit()
}

func uberStateWire(u UberState) string {
	return fmt.Sprintf("%d|%d|%s", u.Identifier.Group, u.Identifier.ID, u.Value)
}

func fmtFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
