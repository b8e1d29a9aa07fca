// Package ast defines the logic-graph's typed traversal graph: the
// output of the two-pass parser in pkgs/parser, built from Areas down to
// individual Requirement leaves.
package ast

import "github.com/ori-rando/seedcore/pkgs/value"

// RequirementKind discriminates the Requirement tagged sum.
type RequirementKind int

const (
	ReqFree RequirementKind = iota
	ReqDefinition
	ReqPathset
	ReqSkill
	ReqEnergySkill
	ReqResource
	ReqShard
	ReqTeleporter
	ReqState
	ReqQuest
	ReqDamage
	ReqDanger
	ReqCombat
	ReqBoss
	ReqBreakWall
	ReqShurikenBreak
	ReqSentryJump
)

// Requirement is a single leaf condition in a logic line.
type Requirement struct {
	Kind RequirementKind

	Name     string // Definition / Pathset / State / Quest / Combat enemy list
	Skill    value.Skill
	Resource value.Resource
	Shard    value.Shard
	Teleporter value.Teleporter
	Amount   uint16 // EnergySkill cost, Resource count, Damage/Danger/Boss/BreakWall/ShurikenBreak/SentryJump health
}

// Line is one AND/OR-separated requirement row, optionally followed by a
// nested Group of alternative lines (a trailing "group" keyword followed
// by an indented block).
type Line struct {
	Ands  []Requirement
	Ors   []Requirement
	Group *Group // nil when the line has no nested group
}

// Group is an indented block of alternative Lines; a location is
// reachable if ANY Line in the Group is satisfied.
type Group struct {
	Lines []Line
}

// Pathset is one named difficulty-tier flag with a human description.
type Pathset struct {
	Identifier  string
	Description string
}

// Pathsets is a named family of Pathset tiers declared together.
type Pathsets struct {
	Identifier string
	Pathsets   []Pathset
}

// RefillKind discriminates a Refill's resource target.
type RefillKind int

const (
	RefillFull RefillKind = iota
	RefillCheckpoint
	RefillHealth
	RefillEnergy
)

// Refill is a restore point reachable at an Anchor, gated by an optional
// requirement Group (nil means unconditional).
type Refill struct {
	Kind         RefillKind
	Amount       uint16 // Health/Energy fragment count; 0 means "fully restore"
	Requirements *Group
}

// ConnectionKind discriminates what a Connection links to.
type ConnectionKind int

const (
	ConnState ConnectionKind = iota
	ConnQuest
	ConnPickup
	ConnAnchor
)

// Connection links an Anchor to a State, Quest, Pickup or another
// Anchor, gated by an optional requirement Group.
type Connection struct {
	Kind         ConnectionKind
	Identifier   string
	Requirements *Group
}

// Definition names a reusable requirement Group other lines can
// reference by identifier (resolved to ReqDefinition).
type Definition struct {
	Identifier   string
	Requirements Group
}

// Region gates an entire named area behind a requirement Group.
type Region struct {
	Identifier   string
	Requirements Group
}

// Anchor is a named traversal node: an optional world Position, the
// Refills reachable there, and the Connections leading out of it.
type Anchor struct {
	Identifier  string
	Position    *value.Position // nil when the anchor has no fixed position
	Refills     []Refill
	Connections []Connection
}

// Areas is the parsed logic-graph file: every Definition, Region and
// Anchor declared in source order.
type Areas struct {
	Definitions []Definition
	Regions     []Region
	Anchors     []Anchor
}
