package ast

import "github.com/ori-rando/seedcore/pkgs/value"

// NewAreas assembles a complete Areas graph from its three declaration
// lists, in the order the parser encountered them.
func NewAreas(definitions []Definition, regions []Region, anchors []Anchor) *Areas {
	return &Areas{Definitions: definitions, Regions: regions, Anchors: anchors}
}

// Free builds the "free" requirement.
func Free() Requirement { return Requirement{Kind: ReqFree} }

// Def references a named Definition by identifier.
func Def(name string) Requirement { return Requirement{Kind: ReqDefinition, Name: name} }

// PathsetReq references a named Pathset tier by identifier.
func PathsetReq(name string) Requirement { return Requirement{Kind: ReqPathset, Name: name} }

// SkillReq requires a skill to be owned.
func SkillReq(s value.Skill) Requirement { return Requirement{Kind: ReqSkill, Skill: s} }

// EnergySkillReq requires a skill plus an energy cost to use it.
func EnergySkillReq(s value.Skill, amount uint16) Requirement {
	return Requirement{Kind: ReqEnergySkill, Skill: s, Amount: amount}
}

// ResourceReq requires a minimum count of a resource.
func ResourceReq(r value.Resource, amount uint16) Requirement {
	return Requirement{Kind: ReqResource, Resource: r, Amount: amount}
}

// ShardReq requires a shard to be equipped.
func ShardReq(s value.Shard) Requirement { return Requirement{Kind: ReqShard, Shard: s} }

// TeleporterReq requires a teleporter anchor to be unlocked.
func TeleporterReq(t value.Teleporter) Requirement {
	return Requirement{Kind: ReqTeleporter, Teleporter: t}
}

// StateReq references a named boolean save-file state.
func StateReq(name string) Requirement { return Requirement{Kind: ReqState, Name: name} }

// QuestReq references a named quest's completion.
func QuestReq(name string) Requirement { return Requirement{Kind: ReqQuest, Name: name} }

// DamageReq requires surviving a hit of the given health cost.
func DamageReq(amount uint16) Requirement { return Requirement{Kind: ReqDamage, Amount: amount} }

// DangerReq requires tolerating a hazard of the given health cost.
func DangerReq(amount uint16) Requirement { return Requirement{Kind: ReqDanger, Amount: amount} }

// CombatReq requires defeating the named enemy-list encounter.
func CombatReq(enemies string) Requirement { return Requirement{Kind: ReqCombat, Name: enemies} }

// BossReq requires defeating a boss with the given health pool.
func BossReq(amount uint16) Requirement { return Requirement{Kind: ReqBoss, Amount: amount} }

// BreakWallReq requires breaking a wall of the given health.
func BreakWallReq(amount uint16) Requirement { return Requirement{Kind: ReqBreakWall, Amount: amount} }

// ShurikenBreakReq requires breaking a wall with Shuriken damage.
func ShurikenBreakReq(amount uint16) Requirement {
	return Requirement{Kind: ReqShurikenBreak, Amount: amount}
}

// SentryJumpReq requires a Sentry-jump of the given height cost.
func SentryJumpReq(amount uint16) Requirement {
	return Requirement{Kind: ReqSentryJump, Amount: amount}
}
