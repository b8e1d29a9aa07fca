// Package parser implements the two-pass recursive-descent logic-graph
// parser: a preprocess pass collecting definition/pathset/quest/state
// names, and a process pass building the typed ast.Areas graph.
//
// The concrete surface syntax is line-oriented and indentation
// sensitive: a line either opens a named section (pathsets, definition,
// region, anchor, refill, state, quest, pickup, conn) or is a
// requirement line — one or more `Keyword` / `Keyword=amount` terms
// joined by a uniform comma (AND) or pipe (OR), optionally followed by
// `group` and a nested indented block.
package parser

import (
	"strconv"
	"strings"

	"github.com/ori-rando/seedcore/pkgs/ast"
	"github.com/ori-rando/seedcore/pkgs/lexer"
	"github.com/ori-rando/seedcore/pkgs/value"
)

// Parse tokenizes and parses a complete logic-graph source document.
func Parse(input string) (*ast.Areas, error) {
	toks, err := lexer.New(input).Tokenize()
	if err != nil {
		return nil, err
	}
	ctx := newContext(toks)
	ctx.input = input
	if err := preprocess(ctx); err != nil {
		return nil, withInput(err, input)
	}
	ctx.pos = 0
	areas, err := process(ctx)
	if err != nil {
		return nil, withInput(err, input)
	}
	return areas, nil
}

// bareKeywords maps a requirement keyword with no amount directly to
// its Requirement. EnergySkill keywords double as plain Skill
// requirements when given bare.
var bareKeywords = map[string]ast.Requirement{
	"free":          ast.Free(),
	"Arcing":        ast.ShardReq(value.Arcing),
	"Bash":          ast.SkillReq(value.Bash),
	"Blaze":         ast.SkillReq(value.Blaze),
	"Bow":           ast.SkillReq(value.Bow),
	"Burrow":        ast.SkillReq(value.Burrow),
	"BurrowsTP":     ast.TeleporterReq(value.TpBurrows),
	"Catalyst":      ast.ShardReq(value.Catalyst),
	"Dash":          ast.SkillReq(value.Dash),
	"Deflector":     ast.ShardReq(value.Deflector),
	"DenTP":         ast.TeleporterReq(value.TpDen),
	"DepthsTP":      ast.TeleporterReq(value.TpDepths),
	"DoubleJump":    ast.SkillReq(value.DoubleJump),
	"EastPoolsTP":   ast.TeleporterReq(value.TpEastLuma),
	"EastWastesTP":  ast.TeleporterReq(value.TpEastWastes),
	"EastWoodsTP":   ast.TeleporterReq(value.TpEastWoods),
	"EnergyHarvest": ast.ShardReq(value.EnergyHarvest),
	"Flap":          ast.SkillReq(value.Flap),
	"Flash":         ast.SkillReq(value.Flash),
	"Fracture":      ast.ShardReq(value.Fracture),
	"GladesTP":      ast.TeleporterReq(value.TpGlades),
	"Glide":         ast.SkillReq(value.Glide),
	"Grapple":       ast.SkillReq(value.Grapple),
	"Grenade":       ast.SkillReq(value.Grenade),
	"Hammer":        ast.SkillReq(value.Hammer),
	"HollowTP":      ast.TeleporterReq(value.TpHollow),
	"InnerRuinsTP":  ast.TeleporterReq(value.TpInnerRuins),
	"Launch":        ast.SkillReq(value.Launch),
	"LifeHarvest":   ast.ShardReq(value.LifeHarvest),
	"Magnet":        ast.ShardReq(value.Magnet),
	"MarshTP":       ast.TeleporterReq(value.TpMarsh),
	"OuterRuinsTP":  ast.TeleporterReq(value.TpOuterRuins),
	"Overflow":      ast.ShardReq(value.Overflow),
	"ReachTP":       ast.TeleporterReq(value.TpReach),
	"Regenerate":    ast.SkillReq(value.Regenerate),
	"Seir":          ast.SkillReq(value.Seir),
	"Sentry":        ast.SkillReq(value.Sentry),
	"ShriekTP":      ast.TeleporterReq(value.TpShriek),
	"Shuriken":      ast.SkillReq(value.Shuriken),
	"Spear":         ast.SkillReq(value.Spear),
	"Sticky":        ast.ShardReq(value.Sticky),
	"Sword":         ast.SkillReq(value.Sword),
	"TripleJump":    ast.ShardReq(value.TripleJump),
	"Thorn":         ast.ShardReq(value.Thorn),
	"UltraBash":     ast.ShardReq(value.UltraBash),
	"UltraGrapple":  ast.ShardReq(value.UltraGrapple),
	"WallJump":      ast.SkillReq(value.WallJump),
	"WaterBreath":   ast.SkillReq(value.WaterBreath),
	"WaterDash":     ast.SkillReq(value.WaterDash),
	"Water":         ast.SkillReq(value.Water),
	"WellspringTP":  ast.TeleporterReq(value.TpWellspring),
	"WestPoolsTP":   ast.TeleporterReq(value.TpWestLuma),
	"WestWastesTP":  ast.TeleporterReq(value.TpWestWastes),
	"WestWoodsTP":   ast.TeleporterReq(value.TpWestWoods),
	"WillowTP":      ast.TeleporterReq(value.TpWillow),
}

// amountKeywords maps a requirement keyword that was given an amount
// to the Requirement constructor taking that amount. Combat is handled
// separately since its "amount" is an opaque string, not a uint16.
var amountKeywords = map[string]func(uint16) ast.Requirement{
	"Blaze":         func(n uint16) ast.Requirement { return ast.EnergySkillReq(value.Blaze, n) },
	"Boss":          ast.BossReq,
	"Bow":           func(n uint16) ast.Requirement { return ast.EnergySkillReq(value.Bow, n) },
	"BreakWall":     ast.BreakWallReq,
	"Damage":        ast.DamageReq,
	"Danger":        ast.DangerReq,
	"Energy":        func(n uint16) ast.Requirement { return ast.ResourceReq(value.EnergyFragment, n) },
	"Flash":         func(n uint16) ast.Requirement { return ast.EnergySkillReq(value.Flash, n) },
	"Grenade":       func(n uint16) ast.Requirement { return ast.EnergySkillReq(value.Grenade, n) },
	"Health":        func(n uint16) ast.Requirement { return ast.ResourceReq(value.HealthFragment, n) },
	"Keystone":      func(n uint16) ast.Requirement { return ast.ResourceReq(value.Keystone, n) },
	"Ore":           func(n uint16) ast.Requirement { return ast.ResourceReq(value.Ore, n) },
	"Sentry":        func(n uint16) ast.Requirement { return ast.EnergySkillReq(value.Sentry, n) },
	"SentryJump":    ast.SentryJumpReq,
	"ShardSlot":     func(n uint16) ast.Requirement { return ast.ResourceReq(value.ShardSlot, n) },
	"Shuriken":      func(n uint16) ast.Requirement { return ast.EnergySkillReq(value.Shuriken, n) },
	"ShurikenBreak": ast.ShurikenBreakReq,
	"Spear":         func(n uint16) ast.Requirement { return ast.EnergySkillReq(value.Spear, n) },
	"SpiritLight":   func(n uint16) ast.Requirement { return ast.ResourceReq(value.HealthFragment, n) },
}

// needsAmount lists keywords that only ever take the amount form; seen
// bare, they are a WrongAmount error rather than an unknown requirement.
var needsAmount = map[string]struct{}{
	"Boss": {}, "BreakWall": {}, "Damage": {}, "Danger": {}, "Energy": {},
	"Health": {}, "Keystone": {}, "Ore": {}, "SentryJump": {}, "ShardSlot": {},
	"ShurikenBreak": {}, "SpiritLight": {},
}

func knownNames(ctx *context) []string {
	names := make([]string, 0, len(bareKeywords)+len(ctx.definitions)+len(ctx.pathsets)+len(ctx.states)+len(ctx.quests))
	for k := range bareKeywords {
		names = append(names, k)
	}
	for k := range ctx.definitions {
		names = append(names, k)
	}
	for k := range ctx.pathsets {
		names = append(names, k)
	}
	for k := range ctx.states {
		names = append(names, k)
	}
	for k := range ctx.quests {
		names = append(names, k)
	}
	return names
}

func parseRequirement(ctx *context) (ast.Requirement, error) {
	tok, err := ctx.eat(lexer.IDENTIFIER)
	if err != nil {
		return ast.Requirement{}, err
	}
	keyword := tok.Value

	if ctx.check(lexer.EQUALS) {
		ctx.advance()
		amtTok := ctx.advance()
		if keyword == "Combat" {
			return ast.CombatReq(amtTok.Value), nil
		}
		if amtTok.Type != lexer.NUMBER {
			return ast.Requirement{}, notInt(amtTok)
		}
		amount, convErr := strconv.ParseUint(amtTok.Value, 10, 16)
		if convErr != nil {
			return ast.Requirement{}, notInt(amtTok)
		}
		if fn, ok := amountKeywords[keyword]; ok {
			return fn(uint16(amount)), nil
		}
		return ast.Requirement{}, wrongRequirement(tok, knownNames(ctx))
	}

	if req, ok := bareKeywords[keyword]; ok {
		return req, nil
	}
	if _, ok := ctx.definitions[keyword]; ok {
		return ast.Def(keyword), nil
	}
	if _, ok := ctx.pathsets[keyword]; ok {
		return ast.PathsetReq(keyword), nil
	}
	if _, ok := ctx.states[keyword]; ok {
		return ast.StateReq(keyword), nil
	}
	if _, ok := ctx.quests[keyword]; ok {
		return ast.QuestReq(keyword), nil
	}
	if _, ok := needsAmount[keyword]; ok {
		return ast.Requirement{}, wrongAmount(tok)
	}
	return ast.Requirement{}, wrongRequirement(tok, knownNames(ctx))
}

// parseFree consumes a leading "free" identifier and expects the line
// to end immediately after it.
func parseFree(ctx *context) error {
	ctx.advance() // the "free" identifier itself
	switch {
	case ctx.check(lexer.NEWLINE):
		ctx.advance()
	case ctx.check(lexer.DEDENT):
		// stop without consuming; the caller's loop will see the dedent
	default:
		return wrongToken(ctx.current(), "new line after inline 'free'")
	}
	return nil
}

func parseLine(ctx *context) (ast.Line, error) {
	var line ast.Line
	for {
		if ctx.checkKeyword("free") {
			if err := parseFree(ctx); err != nil {
				return ast.Line{}, err
			}
			break
		}
		if !ctx.check(lexer.IDENTIFIER) {
			return ast.Line{}, wrongToken(ctx.current(), "requirement")
		}
		req, err := parseRequirement(ctx)
		if err != nil {
			return ast.Line{}, err
		}
		switch {
		case ctx.check(lexer.COMMA):
			ctx.advance()
			line.Ands = append(line.Ands, req)
		case ctx.check(lexer.PIPE):
			ctx.advance()
			line.Ors = append(line.Ors, req)
		case ctx.check(lexer.NEWLINE):
			ctx.advance()
			if len(line.Ors) == 0 {
				line.Ands = append(line.Ands, req)
			} else {
				line.Ors = append(line.Ors, req)
			}
			return line, nil
		case ctx.check(lexer.DEDENT):
			if len(line.Ors) == 0 {
				line.Ands = append(line.Ands, req)
			} else {
				line.Ors = append(line.Ors, req)
			}
			return line, nil
		case ctx.checkKeyword("group"):
			ctx.advance()
			line.Ands = append(line.Ands, req)
			if !ctx.check(lexer.INDENT) {
				return ast.Line{}, wrongToken(ctx.current(), "indent after 'group'")
			}
			ctx.advance()
			group, err := parseGroup(ctx)
			if err != nil {
				return ast.Line{}, err
			}
			line.Group = group
			return line, nil
		default:
			return ast.Line{}, wrongToken(ctx.current(), "separator or end of line")
		}
	}
	return line, nil
}

func parseGroup(ctx *context) (*ast.Group, error) {
	var g ast.Group
	for {
		switch {
		case ctx.check(lexer.IDENTIFIER):
			l, err := parseLine(ctx)
			if err != nil {
				return nil, err
			}
			g.Lines = append(g.Lines, l)
		case ctx.check(lexer.DEDENT):
			ctx.advance() // consume the dedent closing this group
			return &g, nil
		default:
			return nil, wrongToken(ctx.current(), "requirement or end of group")
		}
	}
}

func parsePathset(ctx *context) (ast.Pathset, error) {
	idTok, err := ctx.eat(lexer.IDENTIFIER)
	if err != nil {
		return ast.Pathset{}, err
	}
	var desc strings.Builder
	if ctx.checkKeyword("group") {
		ctx.advance()
		if _, err := ctx.eat(lexer.INDENT); err != nil {
			return ast.Pathset{}, err
		}
		sep := ""
		for {
			switch {
			case ctx.check(lexer.IDENTIFIER):
				desc.WriteString(sep)
				desc.WriteString(ctx.current().Value)
				sep = " "
				ctx.advance()
			case ctx.check(lexer.NEWLINE):
				if desc.Len() > 0 {
					sep = "\n"
				}
				ctx.advance()
			case ctx.check(lexer.DEDENT):
				ctx.advance()
				return ast.Pathset{Identifier: idTok.Value, Description: desc.String()}, nil
			default:
				return ast.Pathset{}, wrongToken(ctx.current(), "pathset entry")
			}
		}
	}
	if ctx.check(lexer.NEWLINE) {
		ctx.advance()
	}
	return ast.Pathset{Identifier: idTok.Value}, nil
}

func parsePathsetsBlock(ctx *context) (ast.Pathsets, error) {
	idTok, err := ctx.eat(lexer.IDENTIFIER)
	if err != nil {
		return ast.Pathsets{}, err
	}
	if _, err := ctx.eat(lexer.INDENT); err != nil {
		return ast.Pathsets{}, err
	}
	var list []ast.Pathset
	for {
		switch {
		case ctx.check(lexer.IDENTIFIER):
			p, err := parsePathset(ctx)
			if err != nil {
				return ast.Pathsets{}, err
			}
			list = append(list, p)
		case ctx.check(lexer.DEDENT):
			ctx.advance()
			if len(list) == 0 {
				return ast.Pathsets{}, wrongToken(ctx.current(), "pathset entry")
			}
			return ast.Pathsets{Identifier: idTok.Value, Pathsets: list}, nil
		default:
			return ast.Pathsets{}, wrongToken(ctx.current(), "requirement or end of group")
		}
	}
}

func parseNamedGroup(ctx *context) (string, ast.Group, error) {
	idTok, err := ctx.eat(lexer.IDENTIFIER)
	if err != nil {
		return "", ast.Group{}, err
	}
	if !ctx.check(lexer.INDENT) {
		return "", ast.Group{}, wrongToken(ctx.current(), "indent")
	}
	ctx.advance()
	g, err := parseGroup(ctx)
	if err != nil {
		return "", ast.Group{}, err
	}
	return idTok.Value, *g, nil
}

func parseRegion(ctx *context) (ast.Region, error) {
	id, g, err := parseNamedGroup(ctx)
	if err != nil {
		return ast.Region{}, err
	}
	return ast.Region{Identifier: id, Requirements: g}, nil
}

func parseDefinition(ctx *context) (ast.Definition, error) {
	id, g, err := parseNamedGroup(ctx)
	if err != nil {
		return ast.Definition{}, err
	}
	return ast.Definition{Identifier: id, Requirements: g}, nil
}

func parseConnection(ctx *context, kind ast.ConnectionKind) (ast.Connection, error) {
	idTok, err := ctx.eat(lexer.IDENTIFIER)
	if err != nil {
		return ast.Connection{}, err
	}
	var reqs *ast.Group
	switch {
	case ctx.check(lexer.INDENT):
		ctx.advance()
		g, err := parseGroup(ctx)
		if err != nil {
			return ast.Connection{}, err
		}
		reqs = g
	case ctx.checkKeyword("free"):
		if err := parseFree(ctx); err != nil {
			return ast.Connection{}, err
		}
	default:
		return ast.Connection{}, wrongToken(ctx.current(), "indent or 'free'")
	}
	return ast.Connection{Kind: kind, Identifier: idTok.Value, Requirements: reqs}, nil
}

func parseRefill(ctx *context) (ast.Refill, error) {
	idTok, err := ctx.eat(lexer.IDENTIFIER)
	if err != nil {
		return ast.Refill{}, err
	}
	var amount uint16
	hasAmount := false
	if ctx.check(lexer.EQUALS) {
		ctx.advance()
		numTok, err := ctx.eat(lexer.NUMBER)
		if err != nil {
			return ast.Refill{}, err
		}
		n, convErr := strconv.ParseUint(numTok.Value, 10, 16)
		if convErr != nil {
			return ast.Refill{}, notInt(numTok)
		}
		amount = uint16(n)
		hasAmount = true
	}

	var reqs *ast.Group
	switch {
	case ctx.check(lexer.NEWLINE):
		ctx.advance()
	case ctx.checkKeyword("free"):
		if err := parseFree(ctx); err != nil {
			return ast.Refill{}, err
		}
	case ctx.check(lexer.INDENT):
		ctx.advance()
		g, err := parseGroup(ctx)
		if err != nil {
			return ast.Refill{}, err
		}
		reqs = g
	default:
		return ast.Refill{}, wrongToken(ctx.current(), "requirements or end of line")
	}

	var kind ast.RefillKind
	switch idTok.Value {
	case "Checkpoint":
		kind = ast.RefillCheckpoint
	case "Full":
		kind = ast.RefillFull
	case "Health":
		kind = ast.RefillHealth
		if !hasAmount {
			amount = 1
		}
	case "Energy":
		kind = ast.RefillEnergy
	default:
		return ast.Refill{}, wrongToken(idTok, "'Checkpoint', 'Full', 'Health' or 'Energy'")
	}
	return ast.Refill{Kind: kind, Amount: amount, Requirements: reqs}, nil
}

func parseAnchor(ctx *context) (ast.Anchor, error) {
	idTok, err := ctx.eat(lexer.IDENTIFIER)
	if err != nil {
		return ast.Anchor{}, err
	}

	var pos *value.Position
	if ctx.checkKeyword("position") {
		ctx.advance()
		xTok, err := ctx.eat(lexer.NUMBER)
		if err != nil {
			return ast.Anchor{}, err
		}
		if _, err := ctx.eat(lexer.COMMA); err != nil {
			return ast.Anchor{}, err
		}
		yTok, err := ctx.eat(lexer.NUMBER)
		if err != nil {
			return ast.Anchor{}, err
		}
		x, xErr := strconv.ParseFloat(xTok.Value, 32)
		y, yErr := strconv.ParseFloat(yTok.Value, 32)
		if xErr != nil {
			return ast.Anchor{}, notInt(xTok)
		}
		if yErr != nil {
			return ast.Anchor{}, notInt(yTok)
		}
		p, err := value.NewPosition(float32(x), float32(y))
		if err != nil {
			return ast.Anchor{}, wrongToken(idTok, "finite position")
		}
		pos = &p
	}

	if !ctx.check(lexer.INDENT) {
		return ast.Anchor{}, wrongToken(ctx.current(), "indent")
	}
	ctx.advance()

	var refills []ast.Refill
	var conns []ast.Connection
	for {
		switch {
		case ctx.checkKeyword("refill"):
			ctx.advance()
			r, err := parseRefill(ctx)
			if err != nil {
				return ast.Anchor{}, err
			}
			refills = append(refills, r)
		case ctx.checkKeyword("state"):
			ctx.advance()
			c, err := parseConnection(ctx, ast.ConnState)
			if err != nil {
				return ast.Anchor{}, err
			}
			conns = append(conns, c)
		case ctx.checkKeyword("quest"):
			ctx.advance()
			c, err := parseConnection(ctx, ast.ConnQuest)
			if err != nil {
				return ast.Anchor{}, err
			}
			conns = append(conns, c)
		case ctx.checkKeyword("pickup"):
			ctx.advance()
			c, err := parseConnection(ctx, ast.ConnPickup)
			if err != nil {
				return ast.Anchor{}, err
			}
			conns = append(conns, c)
		case ctx.checkKeyword("conn"):
			ctx.advance()
			c, err := parseConnection(ctx, ast.ConnAnchor)
			if err != nil {
				return ast.Anchor{}, err
			}
			conns = append(conns, c)
		case ctx.check(lexer.DEDENT):
			ctx.advance()
			return ast.Anchor{Identifier: idTok.Value, Position: pos, Refills: refills, Connections: conns}, nil
		default:
			return ast.Anchor{}, wrongToken(ctx.current(), "refill, state, quest, pickup, connection or end of anchor")
		}
	}
}

// preprocess scans the whole token stream once, recording every
// definition/pathset/quest/state identifier so the process pass can
// disambiguate bare requirement keywords.
func preprocess(ctx *context) error {
	for !ctx.check(lexer.EOF) {
		switch {
		case ctx.checkKeyword("definition"):
			ctx.advance()
			if ctx.check(lexer.IDENTIFIER) {
				ctx.definitions[ctx.current().Value] = struct{}{}
			}
		case ctx.checkKeyword("pathsets"):
			ctx.advance()
			ps, err := parsePathsetsBlock(ctx)
			if err != nil {
				return err
			}
			for _, p := range ps.Pathsets {
				ctx.pathsets[p.Identifier] = struct{}{}
			}
			continue
		case ctx.checkKeyword("quest"):
			ctx.advance()
			if ctx.check(lexer.IDENTIFIER) {
				ctx.quests[ctx.current().Value] = struct{}{}
			}
		case ctx.checkKeyword("state"):
			ctx.advance()
			if ctx.check(lexer.IDENTIFIER) {
				ctx.states[ctx.current().Value] = struct{}{}
			}
		}
		ctx.advance()
	}
	return nil
}

func process(ctx *context) (*ast.Areas, error) {
	if ctx.check(lexer.NEWLINE) {
		ctx.advance()
	}

	var areas ast.Areas
	for !ctx.check(lexer.EOF) {
		switch {
		case ctx.checkKeyword("pathsets"):
			ctx.advance()
			if _, err := parsePathsetsBlock(ctx); err != nil {
				return nil, err
			}
		case ctx.checkKeyword("definition"):
			ctx.advance()
			d, err := parseDefinition(ctx)
			if err != nil {
				return nil, err
			}
			areas.Definitions = append(areas.Definitions, d)
		case ctx.checkKeyword("region"):
			ctx.advance()
			r, err := parseRegion(ctx)
			if err != nil {
				return nil, err
			}
			areas.Regions = append(areas.Regions, r)
		case ctx.checkKeyword("anchor"):
			ctx.advance()
			a, err := parseAnchor(ctx)
			if err != nil {
				return nil, err
			}
			areas.Anchors = append(areas.Anchors, a)
		default:
			return nil, wrongToken(ctx.current(), "definition or anchor")
		}
	}
	return &areas, nil
}
