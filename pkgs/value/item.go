package value

import "fmt"

// ItemKind discriminates the Item tagged sum (item-codec tags, tag 7
// reserved and never valid).
type ItemKind int

const (
	ItemSpiritLight ItemKind = iota
	ItemRemoveSpiritLight
	ItemResource
	ItemSkill
	ItemRemoveSkill
	ItemShard
	ItemRemoveShard
	ItemCommand
	ItemTeleporter
	ItemRemoveTeleporter
	ItemMessage
	ItemUberState
	ItemWorldEvent
	ItemBonusItem
	ItemBonusUpgrade
	ItemZoneHint
	ItemCheckableHint
	ItemRelic
	ItemSysMessage
	ItemWheelCommand
	ItemShopCommand
)

// Item is the tagged sum produced by the pickup-script codec (§4.D). Only
// the fields relevant to Kind are populated; this mirrors how the
// original closed enum carries per-variant payloads.
type Item struct {
	Kind ItemKind

	Amount   int16  // SpiritLight / RemoveSpiritLight
	Resource Resource
	Skill    Skill
	Shard    Shard
	Command  Command
	Teleporter Teleporter
	Message  string
	UberState UberStateItem
	ZoneID   int
	BonusItem BonusItem
	BonusUpgrade BonusUpgrade
	Zone     Zone
	RelicZone Zone
	SysMessage SysMessage
	WheelCommand WheelCommand
	ShopCommand ShopCommand
}

// UberStateItem is the payload of Item.Kind == ItemUberState (tag 8): a
// set-uber-state instruction with an optional skip-if-already-set guard
// and a sign (the "+"/"-" relative-adjustment prefixes; bools may not be
// signed).
type UberStateItem struct {
	Identifier UberIdentifier
	Type       UberType
	Operator   Operator
	Signed     bool
	Sign       SetSign
	SkipIfSet  bool
}

// SetSign distinguishes an absolute assignment from a relative "+"/"-"
// adjustment, matching the directive's sign-prefix syntax. Only
// meaningful when Signed is true.
type SetSign int

const (
	SetAbsolute SetSign = iota
	SetAdd
	SetSubtract
)

func (i Item) String() string {
	return fmt.Sprintf("Item(kind=%d)", int(i.Kind))
}

// CommandKind discriminates the Command tagged sum (item-codec command
// dispatch, tags 0-28).
type CommandKind int

const (
	CmdAutosave CommandKind = iota
	CmdResource
	CmdCheckpoint
	CmdMagic
	CmdStopEqual
	CmdStopGreater
	CmdStopLess
	CmdToggle
	CmdWarp
	CmdStartTimer
	CmdStopTimer
	CmdStateRedirect
	CmdSetHealth
	CmdSetEnergy
	CmdSetSpiritLight
	CmdEquip
	CmdAhkSignal
	CmdIfEqual
	CmdIfGreater
	CmdIfLess
	CmdDisableSync
	CmdEnableSync
	CmdCreateWarp
	CmdDestroyWarp
	CmdIfBox
	CmdIfSelfEqual
	CmdIfSelfGreater
	CmdIfSelfLess
	CmdUnequip
)

// Command is the tagged sum behind Item.Kind == ItemCommand.
type Command struct {
	Kind CommandKind

	Resource   Resource
	Amount     int16
	UberState  UberState
	Toggle     ToggleCommand
	On         bool
	Position   Position // Warp, CreateWarp
	WarpID     uint8    // CreateWarp, DestroyWarp
	Identifier UberIdentifier
	Intercept  int32
	Set        int32
	Slot       uint8
	Ability    uint16
	Signal     string
	Item       *Item // IfEqual/IfGreater/IfLess/IfBox/IfSelf*'s nested pickup
	Position1  Position // IfBox
	Position2  Position // IfBox
	Value      string   // IfSelfEqual/IfSelfGreater/IfSelfLess
}

func (c Command) String() string {
	return fmt.Sprintf("Command(kind=%d)", int(c.Kind))
}

// WheelCommandKind discriminates the WheelCommand tagged sum (item-codec
// wheel-command dispatch, tags 0-8).
type WheelCommandKind int

const (
	WheelSetName WheelCommandKind = iota
	WheelSetDescription
	WheelSetIcon
	WheelSetColor
	WheelSetItem
	WheelSetSticky
	WheelSwitchWheel
	WheelRemoveItem
	WheelClearAll
)

// WheelBind selects which radial-menu slot a wheel command targets.
type WheelBind int

const (
	WheelBindAll WheelBind = iota
	WheelBindAbility1
	WheelBindAbility2
	WheelBindAbility3
)

// WheelCommand is the tagged sum behind Item.Kind == ItemWheelCommand.
type WheelCommand struct {
	Kind WheelCommandKind

	WheelID     int32
	Position    int
	Bind        WheelBind
	Name        string
	Description string
	Icon        Icon
	R, G, B, A  uint8
	Item        *Item
	Sticky      bool
}

func (w WheelCommand) String() string {
	return fmt.Sprintf("WheelCommand(kind=%d)", int(w.Kind))
}

// ShopCommandKind discriminates the ShopCommand tagged sum (item-codec
// shop-command dispatch, tags 0-4).
type ShopCommandKind int

const (
	ShopSetIcon ShopCommandKind = iota
	ShopSetTitle
	ShopSetDescription
	ShopSetLocked
	ShopSetVisible
)

// ShopCommand is the tagged sum behind Item.Kind == ItemShopCommand.
type ShopCommand struct {
	Kind ShopCommandKind

	Identifier     UberIdentifier
	Icon           Icon
	Title          string
	HasTitle       bool // false means "clear the custom title"
	Description    string
	HasDescription bool // false means "clear the custom description"
	Locked         bool
	Visible        bool
}

func (s ShopCommand) String() string {
	return fmt.Sprintf("ShopCommand(kind=%d)", int(s.Kind))
}
