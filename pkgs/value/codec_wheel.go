package value

import (
	"fmt"
	"strconv"
	"strings"
)

func parseWheelItemPosition(parts []string) (wheel int32, position int, rest []string, err error) {
	if len(parts) < 2 {
		return 0, 0, nil, fmt.Errorf("missing wheel item position")
	}
	w, err := strconv.ParseInt(parts[0], 10, 16)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("invalid wheel id")
	}
	p, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("invalid wheel item position")
	}
	return int32(w), int(p), parts[2:], nil
}

func parseWheelItem(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing wheel command type")
	}
	cmd, err := parseWheelByTag(parts[0], parts[1:])
	if err != nil {
		return Item{}, err
	}
	return Item{Kind: ItemWheelCommand, WheelCommand: cmd}, nil
}

func parseWheelByTag(tag string, parts []string) (WheelCommand, error) {
	switch tag {
	case "0":
		wheel, pos, rest, err := parseWheelItemPosition(parts)
		if err != nil {
			return WheelCommand{}, err
		}
		if len(rest) == 0 {
			return WheelCommand{}, fmt.Errorf("missing name")
		}
		return WheelCommand{Kind: WheelSetName, WheelID: wheel, Position: pos, Name: strings.Join(rest, "|")}, nil
	case "1":
		wheel, pos, rest, err := parseWheelItemPosition(parts)
		if err != nil {
			return WheelCommand{}, err
		}
		if len(rest) == 0 {
			return WheelCommand{}, fmt.Errorf("missing description")
		}
		return WheelCommand{Kind: WheelSetDescription, WheelID: wheel, Position: pos, Description: strings.Join(rest, "|")}, nil
	case "2":
		wheel, pos, rest, err := parseWheelItemPosition(parts)
		if err != nil {
			return WheelCommand{}, err
		}
		if len(rest) == 0 {
			return WheelCommand{}, fmt.Errorf("missing icon")
		}
		icon, err := ParseIcon(rest[0])
		if err != nil {
			return WheelCommand{}, err
		}
		if err := endOfItem(rest[1:]); err != nil {
			return WheelCommand{}, err
		}
		return WheelCommand{Kind: WheelSetIcon, WheelID: wheel, Position: pos, Icon: icon}, nil
	case "3":
		wheel, pos, rest, err := parseWheelItemPosition(parts)
		if err != nil {
			return WheelCommand{}, err
		}
		if len(rest) < 4 {
			return WheelCommand{}, fmt.Errorf("missing alpha channel")
		}
		channels := make([]uint8, 4)
		names := []string{"red", "green", "blue", "alpha"}
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseUint(rest[i], 10, 8)
			if err != nil {
				return WheelCommand{}, fmt.Errorf("invalid %s channel", names[i])
			}
			channels[i] = uint8(v)
		}
		if err := endOfItem(rest[4:]); err != nil {
			return WheelCommand{}, err
		}
		return WheelCommand{Kind: WheelSetColor, WheelID: wheel, Position: pos,
			R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
	case "4":
		wheel, pos, rest, err := parseWheelItemPosition(parts)
		if err != nil {
			return WheelCommand{}, err
		}
		if len(rest) == 0 {
			return WheelCommand{}, fmt.Errorf("missing bind")
		}
		var bind WheelBind
		switch rest[0] {
		case "0":
			bind = WheelBindAll
		case "1":
			bind = WheelBindAbility1
		case "2":
			bind = WheelBindAbility2
		case "3":
			bind = WheelBindAbility3
		default:
			return WheelCommand{}, fmt.Errorf("invalid bind")
		}
		item, err := parseParts(rest[1:])
		if err != nil {
			return WheelCommand{}, err
		}
		return WheelCommand{Kind: WheelSetItem, WheelID: wheel, Position: pos, Bind: bind, Item: &item}, nil
	case "5":
		if len(parts) < 2 {
			return WheelCommand{}, fmt.Errorf("missing sticky boolean")
		}
		wheel, err := strconv.ParseInt(parts[0], 10, 16)
		if err != nil {
			return WheelCommand{}, fmt.Errorf("invalid wheel id")
		}
		sticky, err := strconv.ParseBool(parts[1])
		if err != nil {
			return WheelCommand{}, fmt.Errorf("invalid sticky boolean")
		}
		if err := endOfItem(parts[2:]); err != nil {
			return WheelCommand{}, err
		}
		return WheelCommand{Kind: WheelSetSticky, WheelID: int32(wheel), Sticky: sticky}, nil
	case "6":
		if len(parts) == 0 {
			return WheelCommand{}, fmt.Errorf("missing wheel id")
		}
		wheel, err := strconv.ParseInt(parts[0], 10, 16)
		if err != nil {
			return WheelCommand{}, fmt.Errorf("invalid wheel id")
		}
		if err := endOfItem(parts[1:]); err != nil {
			return WheelCommand{}, err
		}
		return WheelCommand{Kind: WheelSwitchWheel, WheelID: int32(wheel)}, nil
	case "7":
		wheel, pos, rest, err := parseWheelItemPosition(parts)
		if err != nil {
			return WheelCommand{}, err
		}
		if err := endOfItem(rest); err != nil {
			return WheelCommand{}, err
		}
		return WheelCommand{Kind: WheelRemoveItem, WheelID: wheel, Position: pos}, nil
	case "8":
		if err := endOfItem(parts); err != nil {
			return WheelCommand{}, err
		}
		return WheelCommand{Kind: WheelClearAll}, nil
	default:
		return WheelCommand{}, fmt.Errorf("invalid wheel command type")
	}
}

func parseShopItem(parts []string) (Item, error) {
	if len(parts) == 0 {
		return Item{}, fmt.Errorf("missing shop command type")
	}
	cmd, err := parseShopByTag(parts[0], parts[1:])
	if err != nil {
		return Item{}, err
	}
	return Item{Kind: ItemShopCommand, ShopCommand: cmd}, nil
}

func shopUberState(parts []string) (UberIdentifier, []string, error) {
	if len(parts) < 2 {
		return UberIdentifier{}, nil, fmt.Errorf("missing uber id")
	}
	ident, err := ParseUberIdentifier(parts[0] + "|" + parts[1])
	if err != nil {
		return UberIdentifier{}, nil, err
	}
	return ident, parts[2:], nil
}

func parseShopByTag(tag string, parts []string) (ShopCommand, error) {
	switch tag {
	case "0":
		ident, rest, err := shopUberState(parts)
		if err != nil {
			return ShopCommand{}, err
		}
		if len(rest) == 0 {
			return ShopCommand{}, fmt.Errorf("missing icon")
		}
		icon, err := ParseIcon(rest[0])
		if err != nil {
			return ShopCommand{}, err
		}
		if err := endOfItem(rest[1:]); err != nil {
			return ShopCommand{}, err
		}
		return ShopCommand{Kind: ShopSetIcon, Identifier: ident, Icon: icon}, nil
	case "1":
		ident, rest, err := shopUberState(parts)
		if err != nil {
			return ShopCommand{}, err
		}
		sc := ShopCommand{Kind: ShopSetTitle, Identifier: ident}
		if len(rest) > 0 {
			sc.Title, sc.HasTitle = rest[0], true
			rest = rest[1:]
		}
		if err := endOfItem(rest); err != nil {
			return ShopCommand{}, err
		}
		return sc, nil
	case "2":
		ident, rest, err := shopUberState(parts)
		if err != nil {
			return ShopCommand{}, err
		}
		sc := ShopCommand{Kind: ShopSetDescription, Identifier: ident}
		if len(rest) > 0 {
			sc.Description, sc.HasDescription = rest[0], true
			rest = rest[1:]
		}
		if err := endOfItem(rest); err != nil {
			return ShopCommand{}, err
		}
		return sc, nil
	case "3":
		ident, rest, err := shopUberState(parts)
		if err != nil {
			return ShopCommand{}, err
		}
		if len(rest) == 0 {
			return ShopCommand{}, fmt.Errorf("missing locked")
		}
		locked, err := strconv.ParseBool(rest[0])
		if err != nil {
			return ShopCommand{}, fmt.Errorf("invalid value %s for boolean locked", rest[0])
		}
		if err := endOfItem(rest[1:]); err != nil {
			return ShopCommand{}, err
		}
		return ShopCommand{Kind: ShopSetLocked, Identifier: ident, Locked: locked}, nil
	case "4":
		ident, rest, err := shopUberState(parts)
		if err != nil {
			return ShopCommand{}, err
		}
		if len(rest) == 0 {
			return ShopCommand{}, fmt.Errorf("missing visible")
		}
		visible, err := strconv.ParseBool(rest[0])
		if err != nil {
			return ShopCommand{}, fmt.Errorf("invalid value %s for boolean visible", rest[0])
		}
		if err := endOfItem(rest[1:]); err != nil {
			return ShopCommand{}, err
		}
		return ShopCommand{Kind: ShopSetVisible, Identifier: ident, Visible: visible}, nil
	default:
		return ShopCommand{}, fmt.Errorf("invalid shop command type")
	}
}

// Emit renders a WheelCommand back to its tag-16 sub-dispatch text.
func (w WheelCommand) Emit() string {
	switch w.Kind {
	case WheelSetName:
		return fmt.Sprintf("0|%d|%d|%s", w.WheelID, w.Position, w.Name)
	case WheelSetDescription:
		return fmt.Sprintf("1|%d|%d|%s", w.WheelID, w.Position, w.Description)
	case WheelSetIcon:
		return fmt.Sprintf("2|%d|%d|%s", w.WheelID, w.Position, w.Icon)
	case WheelSetColor:
		return fmt.Sprintf("3|%d|%d|%d|%d|%d|%d", w.WheelID, w.Position, w.R, w.G, w.B, w.A)
	case WheelSetItem:
		return fmt.Sprintf("4|%d|%d|%d|%s", w.WheelID, w.Position, int(w.Bind), emitChild(w.Item))
	case WheelSetSticky:
		return fmt.Sprintf("5|%d|%t", w.WheelID, w.Sticky)
	case WheelSwitchWheel:
		return fmt.Sprintf("6|%d", w.WheelID)
	case WheelRemoveItem:
		return fmt.Sprintf("7|%d|%d", w.WheelID, w.Position)
	case WheelClearAll:
		return "8"
	default:
		return fmt.Sprintf("invalid-wheel-command(%d)", int(w.Kind))
	}
}

// Emit renders a ShopCommand back to its tag-17 sub-dispatch text.
func (s ShopCommand) Emit() string {
	wire := func() string { return fmt.Sprintf("%d|%d", s.Identifier.Group, s.Identifier.ID) }
	switch s.Kind {
	case ShopSetIcon:
		return fmt.Sprintf("0|%s|%s", wire(), s.Icon)
	case ShopSetTitle:
		if !s.HasTitle {
			return fmt.Sprintf("1|%s", wire())
		}
		return fmt.Sprintf("1|%s|%s", wire(), s.Title)
	case ShopSetDescription:
		if !s.HasDescription {
			return fmt.Sprintf("2|%s", wire())
		}
		return fmt.Sprintf("2|%s|%s", wire(), s.Description)
	case ShopSetLocked:
		return fmt.Sprintf("3|%s|%t", wire(), s.Locked)
	case ShopSetVisible:
		return fmt.Sprintf("4|%s|%t", wire(), s.Visible)
	default:
		return fmt.Sprintf("invalid-shop-command(%d)", int(s.Kind))
	}
}
