package vim

import (
	"strings"

	"github.com/dshills/sneak/internal/input/key"
	"github.com/dshills/sneak/internal/sneak"
)

// ParseStatus indicates the result of parsing a key event.
type ParseStatus uint8

const (
	// StatusPending indicates more input is needed.
	StatusPending ParseStatus = iota

	// StatusComplete indicates a complete command was parsed.
	StatusComplete

	// StatusInvalid indicates the sequence is invalid.
	StatusInvalid

	// StatusPassthrough indicates the key should be passed through.
	StatusPassthrough
)

// String returns a string representation of the status.
func (s ParseStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	case StatusPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// ParseState represents the current state of the parser.
type ParseState uint8

const (
	// StateInitial is waiting for initial input.
	StateInitial ParseState = iota

	// StateCount is accumulating a count prefix.
	StateCount

	// StateRegister is waiting for a register name after ".
	StateRegister

	// StateOperator has received an operator, waiting for a sneak.
	StateOperator

	// StateSneakFirst has received f/F/t/T, waiting for the first character.
	StateSneakFirst

	// StateSneakSecond is waiting for the second character or <CR>.
	StateSneakSecond
)

// String returns a string representation of the state.
func (s ParseState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateCount:
		return "count"
	case StateRegister:
		return "register"
	case StateOperator:
		return "operator"
	case StateSneakFirst:
		return "sneakFirst"
	case StateSneakSecond:
		return "sneakSecond"
	default:
		return "unknown"
	}
}

// Command represents a parsed command.
type Command struct {
	// Count is the repeat count (0 means none given).
	Count int

	// Register is the target register (0 means default).
	Register rune

	// Operator is the pending operator, if any.
	Operator *Operator

	// Motion is the cursor motion, if any.
	Motion *Motion

	// Keys is [trigger, c1, c2] for sneak commands. c2 is sneak.Terminator
	// when the query was ended with <CR>.
	Keys []rune

	// Action is the action name to dispatch.
	Action string
}

// GetCount returns the effective count (1 if none specified).
func (c *Command) GetCount() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// ParseResult contains the result of parsing a key event.
type ParseResult struct {
	// Status indicates the parse result.
	Status ParseStatus

	// Command is the parsed command (if Status == StatusComplete).
	Command *Command

	// PendingDisplay shows the pending keys for the status line.
	PendingDisplay string
}

// Parser parses key sequences into commands.
type Parser struct {
	state ParseState

	count    CountState
	register rune
	operator *Operator
	trigger  rune
	first    rune

	pendingKeys []string
}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{
		state:       StateInitial,
		pendingKeys: make([]string, 0, 8),
	}
}

// Reset clears all parser state.
func (p *Parser) Reset() {
	p.state = StateInitial
	p.count.Reset()
	p.register = 0
	p.operator = nil
	p.trigger = 0
	p.first = 0
	p.pendingKeys = p.pendingKeys[:0]
}

// State returns the current parser state.
func (p *Parser) State() ParseState {
	return p.state
}

// PendingKeys returns the pending keys in Vim notation.
func (p *Parser) PendingKeys() string {
	return strings.Join(p.pendingKeys, "")
}

// OperatorPending returns the operator waiting for a motion, or nil.
func (p *Parser) OperatorPending() *Operator {
	return p.operator
}

// Parse processes a key event and returns the result.
func (p *Parser) Parse(event key.Event) ParseResult {
	if event.IsEscape() {
		p.Reset()
		return ParseResult{Status: StatusPassthrough}
	}

	switch p.state {
	case StateSneakFirst:
		return p.parseSneakFirst(event)
	case StateSneakSecond:
		return p.parseSneakSecond(event)
	}

	if !event.IsRune() || event.IsModified() {
		return p.parseSpecial(event)
	}

	r := event.Rune
	p.pendingKeys = append(p.pendingKeys, event.String())

	switch p.state {
	case StateInitial, StateCount:
		return p.parseInitial(r)
	case StateRegister:
		return p.parseRegister(r)
	case StateOperator:
		return p.parseOperator(r)
	default:
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}
}

// parseSpecial handles non-character keys outside a sneak.
func (p *Parser) parseSpecial(event key.Event) ParseResult {
	if p.state == StateInitial || p.state == StateCount {
		if m := GetSpecialMotion(event.String()); m != nil {
			return p.completeMotion(m)
		}
		if action, ok := GetEditAction(event.String()); ok {
			return p.completeAction(action)
		}
	}
	if p.state != StateInitial {
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}
	return ParseResult{Status: StatusPassthrough}
}

// parseInitial handles input in the initial and count states.
func (p *Parser) parseInitial(r rune) ParseResult {
	if (p.state == StateCount && IsCountDigit(r)) || (p.state == StateInitial && IsCountStart(r)) {
		p.count.AccumulateDigit(r)
		p.state = StateCount
		return p.pending()
	}

	if r == '"' && p.register == 0 {
		p.state = StateRegister
		return p.pending()
	}

	if op := GetOperator(r); op != nil {
		p.operator = op
		p.state = StateOperator
		return p.pending()
	}

	if sneak.IsTrigger(r) {
		p.trigger = r
		p.state = StateSneakFirst
		return p.pending()
	}

	if action, ok := repeatAction(r); ok {
		return p.completeAction(action)
	}

	if m := GetMotion(r); m != nil {
		return p.completeMotion(m)
	}

	if action, ok := GetEditAction(string(r)); ok {
		return p.completeAction(action)
	}

	fresh := p.state == StateInitial && p.register == 0
	p.Reset()
	if fresh {
		return ParseResult{Status: StatusPassthrough}
	}
	return ParseResult{Status: StatusInvalid}
}

// parseRegister handles input after ".
func (p *Parser) parseRegister(r rune) ParseResult {
	if !IsValidRegister(r) {
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}

	p.register = r
	p.state = StateInitial
	if p.count.Active {
		p.state = StateCount
	}
	return p.pending()
}

// parseOperator handles input after an operator key.
func (p *Parser) parseOperator(r rune) ParseResult {
	if sneak.IsTrigger(r) {
		p.trigger = r
		p.state = StateSneakFirst
		return p.pending()
	}

	if action, ok := repeatAction(r); ok {
		return p.completeAction(action)
	}

	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// parseSneakFirst takes the first query character.
func (p *Parser) parseSneakFirst(event key.Event) ParseResult {
	r, ok := event.Char()
	if !ok || r == sneak.Terminator {
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}

	p.first = r
	p.pendingKeys = append(p.pendingKeys, event.String())
	p.state = StateSneakSecond
	return p.pending()
}

// parseSneakSecond takes the second query character. <CR> arrives as
// sneak.Terminator and ends a single-character query.
func (p *Parser) parseSneakSecond(event key.Event) ParseResult {
	r, ok := event.Char()
	if !ok {
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}

	v, _ := sneak.Lookup(p.trigger)
	cmd := p.buildBaseCommand()
	cmd.Keys = []rune{p.trigger, p.first, r}
	cmd.Action = SneakAction(v)

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

// completeAction builds a command that needs no further keys, such as ;
// or u.
func (p *Parser) completeAction(action string) ParseResult {
	cmd := p.buildBaseCommand()
	cmd.Action = action

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

// completeMotion builds a complete motion command.
func (p *Parser) completeMotion(m *Motion) ParseResult {
	cmd := p.buildBaseCommand()
	cmd.Motion = m
	cmd.Action = m.Action

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

func (p *Parser) pending() ParseResult {
	return ParseResult{
		Status:         StatusPending,
		PendingDisplay: p.PendingKeys(),
	}
}

// buildBaseCommand creates a Command with common fields set.
func (p *Parser) buildBaseCommand() *Command {
	cmd := &Command{
		Register: p.register,
		Operator: p.operator,
	}
	if p.count.Active {
		cmd.Count = p.count.Get()
	}
	return cmd
}
