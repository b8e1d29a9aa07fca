package header

import (
	"fmt"
	"strconv"
	"strings"

	coreerrors "github.com/ori-rando/seedcore/pkgs/errors"
	"github.com/ori-rando/seedcore/pkgs/value"
	"github.com/ori-rando/seedcore/pkgs/world"
)

// Processor carries one header invocation's mutable state across its
// line-at-a-time pass: the growing output, the random-draw pool,
// declared parameters, and conditional-nesting tracking.
type Processor struct {
	Name        string
	World       world.World
	PRNG        world.PRNG
	ParamValues map[string]string

	processed strings.Builder
	pool      []string
	parameters map[string]string
	skipUntil int
	depth     int
	firstLine bool
	ctx       *Context
}

// NewProcessor returns a Processor for one header named name (used to
// scope exclude-command bookkeeping), consuming from w and prng.
// paramValues supplies externally-injected !!parameter overrides for
// this header specifically.
func NewProcessor(name string, w world.World, prng world.PRNG, paramValues map[string]string) *Processor {
	if paramValues == nil {
		paramValues = map[string]string{}
	}
	return &Processor{
		Name:        name,
		World:       w,
		PRNG:        prng,
		ParamValues: paramValues,
		parameters:  make(map[string]string),
		skipUntil:   -1,
		firstLine:   true,
		ctx:         NewContext(),
	}
}

// Process runs the full per-line pipeline (§4.E) over header, returning
// the normalized seed text plus the accumulated Context. The header's
// World is mutated in place by !!add/!!remove/!!addpool/pickup lines.
func Process(name string, text string, w world.World, prng world.PRNG, paramValues map[string]string) (string, *Context, error) {
	p := NewProcessor(name, w, prng, paramValues)
	for _, raw := range strings.Split(text, "\n") {
		if err := p.line(raw); err != nil {
			return "", nil, err
		}
	}
	p.processed.WriteByte('\n')
	return p.processed.String(), p.ctx, nil
}

func (p *Processor) line(raw string) error {
	line, err := ApplyTake(raw, &p.pool, p.PRNG)
	if err != nil {
		return err
	}
	line, err = ApplyParameters(line, p.parameters)
	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(line)

	if p.firstLine {
		p.firstLine = false
		if strings.HasPrefix(line, "#") {
			return nil
		}
	}

	if strings.HasPrefix(trimmed, "////") {
		return nil
	}
	if idx := strings.Index(trimmed, "//"); idx >= 0 {
		if strings.Contains(trimmed[idx:], "skip-validate") {
			return nil
		}
		trimmed = trimmed[:idx]
	}

	if p.skipUntil > -1 {
		switch {
		case strings.TrimRight(trimmed, " \t") == "!!endif":
			p.depth--
		case strings.HasPrefix(trimmed, "!!if "):
			p.depth++
		}
		if p.depth == p.skipUntil {
			p.skipUntil = -1
		}
		return nil
	}

	switch {
	case strings.HasPrefix(trimmed, "Flags:"):
		for _, flag := range strings.Split(trimmed[len("Flags:"):], ",") {
			p.ctx.Flags = append(p.ctx.Flags, strings.TrimSpace(flag))
		}
		return nil
	case strings.HasPrefix(trimmed, "!!"):
		return p.directive(strings.TrimPrefix(trimmed, "!!"), line)
	case strings.HasPrefix(line, "!"):
		p.processed.WriteString(strings.TrimPrefix(line, "!"))
		p.processed.WriteByte('\n')
		return nil
	case strings.HasPrefix(line, "timer:"):
		if err := p.validateTimer(strings.TrimSpace(line[len("timer:"):])); err != nil {
			return fmt.Errorf("malformed timer declaration %s: %w", line, err)
		}
		p.processed.WriteString(line)
		p.processed.WriteByte('\n')
		return nil
	default:
		if trimmed != "" {
			if err := p.pickup(trimmed); err != nil {
				return err
			}
		}
		p.processed.WriteString(line)
		p.processed.WriteByte('\n')
		return nil
	}
}

func (p *Processor) validateTimer(s string) error {
	parts := strings.Split(s, "|")
	if len(parts) != 4 {
		return fmt.Errorf("expected group|id|group|id")
	}
	if _, err := value.ParseUberIdentifier(parts[0] + "|" + parts[1]); err != nil {
		return err
	}
	if _, err := value.ParseUberIdentifier(parts[2] + "|" + parts[3]); err != nil {
		return err
	}
	return nil
}

func (p *Processor) directive(command, line string) error {
	withContext := func(err error) error {
		if err == nil {
			return nil
		}
		return coreerrors.InContext(err, "command "+line)
	}

	switch {
	case hasArg(command, "include "):
		p.ctx.Dependencies = append(p.ctx.Dependencies, argOf(command, "include ")+".wotwrh")
		return nil
	case hasArg(command, "exclude "):
		p.ctx.Excludes[argOf(command, "exclude ")] = p.Name
		return nil
	case hasArg(command, "add "):
		return withContext(p.add(argOf(command, "add ")))
	case hasArg(command, "remove "):
		return withContext(p.remove(argOf(command, "remove ")))
	case hasArg(command, "name "):
		return withContext(p.name(argOf(command, "name ")))
	case hasArg(command, "display "):
		return withContext(p.display(argOf(command, "display ")))
	case hasArg(command, "price "):
		return withContext(p.price(argOf(command, "price ")))
	case hasArg(command, "icon "):
		return withContext(p.icon(argOf(command, "icon ")))
	case hasArg(command, "parameter "):
		return withContext(p.parameter(argOf(command, "parameter ")))
	case hasArg(command, "pool "):
		return withContext(PoolCommand(strings.TrimSpace(argOf(command, "pool ")), &p.pool))
	case hasArg(command, "addpool "):
		return withContext(p.addpool(argOf(command, "addpool ")))
	case strings.TrimRight(command, " \t") == "flush":
		p.pool = p.pool[:0]
		return nil
	case hasArg(command, "set "):
		return withContext(p.set(argOf(command, "set ")))
	case hasArg(command, "if "):
		return withContext(p.ifDirective(argOf(command, "if ")))
	case strings.TrimRight(command, " \t") == "endif":
		if p.depth == 0 {
			return fmt.Errorf("!!endif without !!if")
		}
		p.depth--
		return nil
	default:
		return fmt.Errorf("unknown command %s", command)
	}
}

func hasArg(command, prefix string) bool { return strings.HasPrefix(command, prefix) }
func argOf(command, prefix string) string { return strings.TrimSpace(command[len(prefix):]) }

func (p *Processor) add(arg string) error {
	count, rest := value.ParseCount(arg)
	item, err := value.Parse(rest)
	if err != nil {
		return err
	}
	p.World.Grant(item, int(count))
	return nil
}

func (p *Processor) remove(arg string) error {
	count, rest := value.ParseCount(arg)
	item, err := value.Parse(rest)
	if err != nil {
		return err
	}
	p.removeFromPool(item, int(count))
	return nil
}

// removeFromPool takes count copies of item from the world pool,
// spilling any shortfall into negative inventory. A SpiritLight
// shortfall always normalizes to the unit denomination, matching how
// spirit light amounts are fungible regardless of the chunk removed.
func (p *Processor) removeFromPool(item value.Item, count int) {
	overflow := p.World.Remove(item, count)
	if overflow <= 0 {
		return
	}
	if item.Kind == value.ItemSpiritLight {
		overflow *= int(item.Amount)
		item = value.Item{Kind: value.ItemSpiritLight, Amount: 1}
	}
	p.ctx.recordOverflow(item, overflow)
}

func (p *Processor) name(arg string) error {
	code, text, err := splitItemAndText(arg, "name")
	if err != nil {
		return err
	}
	d := p.ctx.itemDetails(code)
	d.Name, d.HasName = text, true
	return nil
}

func (p *Processor) display(arg string) error {
	code, text, err := splitItemAndText(arg, "display name")
	if err != nil {
		return err
	}
	d := p.ctx.itemDetails(code)
	d.Display, d.HasDisplay = text, true
	return nil
}

func (p *Processor) price(arg string) error {
	code, text, err := splitItemAndText(arg, "price")
	if err != nil {
		return err
	}
	price, err := strconv.ParseUint(text, 10, 16)
	if err != nil {
		return fmt.Errorf("invalid price %s", text)
	}
	d := p.ctx.itemDetails(code)
	d.Price, d.HasPrice = uint16(price), true
	return nil
}

func (p *Processor) icon(arg string) error {
	code, text, err := splitItemAndText(arg, "icon")
	if err != nil {
		return err
	}
	ic, err := value.ParseIcon(text)
	if err != nil {
		return err
	}
	d := p.ctx.itemDetails(code)
	d.Icon, d.HasIcon = ic, true
	return nil
}

// splitItemAndText splits a "ITEM rest..." argument, validating that
// ITEM parses as an item code before returning the remainder verbatim,
// matching the original directives' "parse-then-discard" validation.
func splitItemAndText(arg, what string) (code, text string, err error) {
	parts := strings.SplitN(arg, " ", 2)
	code = parts[0]
	if _, err = value.Parse(code); err != nil {
		return "", "", err
	}
	if len(parts) < 2 {
		return "", "", fmt.Errorf("missing %s", what)
	}
	return code, parts[1], nil
}

func (p *Processor) parameter(arg string) error {
	parts := strings.SplitN(arg, " ", 2)
	identifier := parts[0]
	if len(parts) < 2 {
		return fmt.Errorf("missing default value")
	}
	defaultParts := strings.SplitN(parts[1], ":", 2)
	rawType, defaultValue := string(TypeString), defaultParts[0]
	if len(defaultParts) == 2 {
		rawType, defaultValue = defaultParts[0], defaultParts[1]
	}
	paramType, err := ParseParamType(rawType)
	if err != nil {
		return err
	}

	chosen := defaultValue
	if v, ok := p.ParamValues[identifier]; ok {
		chosen = v
	}

	if err := ValidateParamValue(paramType, chosen); err != nil {
		return err
	}

	// redeclaring a parameter is recoverable in the original (a warning,
	// not a hard error); the later declaration simply wins here too.
	p.parameters[identifier] = chosen
	return nil
}

func (p *Processor) addpool(arg string) error {
	count, rest := ParseHeaderCount(arg)
	if strings.TrimSpace(rest) != "" {
		return fmt.Errorf("invalid amount")
	}
	// !!addpool draws count times from the current pool, running each
	// draw through !!add exactly as if it had been typed inline.
	for i := uint16(0); i < count; i++ {
		length := len(p.pool)
		if length == 0 {
			return fmt.Errorf("tried to !!take on an empty !!pool")
		}
		index := p.PRNG.GenRange(length)
		item := p.pool[index]
		p.pool = append(p.pool[:index], p.pool[index+1:]...)
		if err := p.add(item); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) set(identifier string) error {
	graph := p.World.Graph()
	nodes := graph.Nodes()
	if len(nodes) == 0 {
		// not actually generating a seed (e.g. header validation)
		return nil
	}
	for _, node := range nodes {
		if node.Identifier() == identifier {
			p.ctx.Sets = append(p.ctx.Sets, identifier)
			return nil
		}
	}
	return fmt.Errorf("target %s not found", identifier)
}

func (p *Processor) ifDirective(arg string) error {
	parts := strings.SplitN(arg, " ", 2)
	identifier := parts[0]
	if len(parts) < 2 {
		return fmt.Errorf("missing comparison value")
	}
	value, ok := p.parameters[identifier]
	if !ok {
		return fmt.Errorf("unknown parameter %s", identifier)
	}
	if parts[1] != value {
		p.skipUntil = p.depth
	}
	p.depth++
	return nil
}

// pickup parses a "group|id|ITEM[...]" line, pre-placing the item at
// the parsed uber-state and decrementing the world pool by one.
func (p *Processor) pickup(trimmed string) error {
	parts := strings.SplitN(trimmed, "|", 3)
	if len(parts) < 3 {
		return fmt.Errorf("malformed pickup %s", trimmed)
	}
	uberState, err := value.ParseUberState(parts[0] + "|" + parts[1])
	if err != nil {
		return fmt.Errorf("malformed pickup %s: %w", trimmed, err)
	}
	item, err := value.Parse(parts[2])
	if err != nil {
		return err
	}

	p.guardSpawnSentinel(uberState, item)

	p.removeFromPool(item, 1)
	p.World.Preplace(uberState, item)
	return nil
}

// guardSpawnSentinel pre-places an empty, silent item at the target a
// UberState pickup on the spawn sentinel (group=3, id=0) would set, so
// the placement engine does not later double-fill a node that was just
// forced to that value by spawn itself.
func (p *Processor) guardSpawnSentinel(uberState value.UberState, item value.Item) {
	if item.Kind != value.ItemUberState {
		return
	}
	if uberState.Identifier != value.SpawnIdentifier {
		return
	}
	command := item.UberState
	if command.Operator.Kind != value.OperatorValue {
		return
	}
	targetValue := command.Operator.Literal
	if targetValue == "true" {
		targetValue = ""
	}
	target := value.UberState{Identifier: command.Identifier, Value: targetValue}

	for _, node := range p.World.Graph().Nodes() {
		if !node.CanPlace() {
			continue
		}
		if node.UberState() != target {
			continue
		}
		null := value.Item{Kind: value.ItemMessage, Message: "f=0|quiet|noclear"}
		p.World.Preplace(target, null)
		return
	}
}
