// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package chaincli parses command lines against a tree of nested commands.
//
// Each command declares flags (--force), options taking a value (--replicas 3) and positional arguments, and may
// tie arguments together with exclusive or inclusive groups. A Parser resolves the command path, assigns and converts
// values, then validates requirements and groups, returning an immutable Context or a *ParseError. App adds help,
// version and callback dispatch on top.
package chaincli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/i18n"
	"github.com/napalu/chaincli/internal/util"
	"github.com/napalu/chaincli/parse"
	"github.com/napalu/chaincli/types"
	"github.com/napalu/chaincli/types/queue"
)

// Parser matches command lines against a CommandTree. A Parser holds no per-invocation state: Parse is a pure
// function of the tree and the tokens, and may be called concurrently once the tree is no longer modified (see
// CommandTree.Freeze).
type Parser struct {
	tree          *CommandTree
	listDelimiter types.ListDelimiterFunc
	logger        *log.Logger
}

// NewParser creates a Parser for tree. The caller should always test for error on return because Parser will be nil
// when an error occurs during initialization.
//
// Configuration example:
//
//	tree, _ := NewCommandTree("app")
//	_ = tree.Insert(NewCommand("deploy",
//		WithArguments(
//			NewPositional("env", String, SetRequired(true)),
//			NewFlag("force", WithShortFlag("f")))))
//	parser, err := NewParser(tree, WithListDelimiterFunc(func(r rune) bool { return r == ',' || r == ';' }))
func NewParser(tree *CommandTree, configs ...ConfigureParserFunc) (*Parser, error) {
	if tree == nil {
		return nil, errs.ErrNilCommandTree
	}
	p := &Parser{
		tree:          tree,
		listDelimiter: DefaultListDelimiter,
		logger:        log.New(io.Discard),
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Tree returns the command tree the parser matches against
func (p *Parser) Tree() *CommandTree {
	return p.tree
}

// ParseString splits s with shell quoting rules and parses the result. s must not contain the executable name.
func (p *Parser) ParseString(s string) (*Context, error) {
	args, err := parse.Split(s)
	if err != nil {
		return nil, &ParseError{Input: s, err: errs.ErrMalformedCommand.Wrap(err)}
	}
	return p.Parse(args)
}

// Parse matches args (without the executable name, typically os.Args[1:]) against the tree and returns either a
// complete Context or exactly one error. Every parse-time error is a *ParseError wrapping one of the errs kinds:
// errs.ErrCommandNotFound, errs.ErrMalformedCommand, errs.ErrMissingArgument, errs.ErrTypeParse or
// errs.ErrGroupParse.
func (p *Parser) Parse(args []string) (*Context, error) {
	cmd, rest := p.tree.Resolve(args)
	p.logger.Debug("resolved command", "path", cmd.PathString(), "remaining", len(rest))

	inv := &invocation{
		parser:      p,
		cmd:         cmd,
		state:       parse.NewState(rest),
		raw:         map[*Argument][]string{},
		positionals: queue.New[string](),
	}
	ctx, err := inv.run()
	if err != nil {
		p.logger.Debug("parse failed", "path", cmd.PathString(), "err", err)
		return nil, err
	}

	return ctx, nil
}

// invocation carries the state of a single Parse call
type invocation struct {
	parser      *Parser
	cmd         *Command
	state       parse.State
	raw         map[*Argument][]string
	seen        []*Argument // first appearance order
	positionals *queue.Q[string]
	converted   map[*Argument][]any
}

func (inv *invocation) run() (*Context, error) {
	steps := []func() error{
		inv.checkSubcommand,
		inv.scanTokens,
		inv.assignPositionals,
		inv.convert,
		inv.checkRequired,
		inv.checkGroups,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	return inv.context(), nil
}

// checkSubcommand rejects a leading unknown word when the resolved command only routes to subcommands
func (inv *invocation) checkSubcommand() error {
	if !inv.cmd.HasChildren() || len(inv.cmd.positionals) > 0 {
		return nil
	}
	first, ok := inv.state.Peek()
	if !ok {
		return nil
	}
	if tok := parse.Lex(first, inv.cmd.hasShort); tok.Kind == parse.TokenPositional {
		return inv.fail(errs.ErrUnknownSubcommand.WithArgs(first, inv.pathString()), func(e *ParseError) {
			e.Input = first
		})
	}

	return nil
}

// scanTokens splits the remaining tokens into named arguments and positional tokens, preserving order
func (inv *invocation) scanTokens() error {
	for inv.state.Advance() {
		tok := parse.Lex(inv.state.CurrentArg(), inv.cmd.hasShort)
		switch tok.Kind {
		case parse.TokenTerminator:
			for _, rest := range inv.state.Rest() {
				inv.positionals.Enqueue(rest)
			}
			inv.state.SetPos(inv.state.Len())
		case parse.TokenPositional:
			inv.positionals.Enqueue(tok.Raw)
		default:
			if err := inv.named(tok); err != nil {
				return err
			}
		}
	}
	inv.parser.logger.Debug("scanned tokens", "named", len(inv.seen), "positional", inv.positionals.Len())

	return nil
}

func (inv *invocation) named(tok parse.Token) error {
	arg, ok := inv.cmd.namedArgument(tok.Name, tok.Kind == parse.TokenShort)
	if !ok {
		return inv.fail(errs.ErrUnknownArgument.WithArgs(tok.Raw, inv.pathString()), func(e *ParseError) {
			e.Input = tok.Raw
		})
	}
	if _, repeated := inv.raw[arg]; repeated && !arg.Repeatable {
		return inv.fail(errs.ErrRepeatedArgument.WithArgs(arg.Name), func(e *ParseError) {
			e.Argument, e.Input = arg.Name, tok.Raw
		})
	}

	if arg.IsFlag() {
		if tok.HasValue {
			return inv.fail(errs.ErrValueOnFlag.WithArgs(arg.Name, tok.Value), func(e *ParseError) {
				e.Argument, e.Input = arg.Name, tok.Raw
			})
		}
		inv.record(arg)
		return nil
	}

	value := tok.Value
	if !tok.HasValue {
		next, ok := inv.state.Peek()
		if !ok || inv.isRegisteredName(next) {
			return inv.fail(errs.ErrMissingValue.WithArgs(arg.Name), func(e *ParseError) {
				e.Argument, e.Input = arg.Name, tok.Raw
			})
		}
		inv.state.Advance()
		value = next
	}

	if arg.Repeatable {
		inv.record(arg, util.SplitList(value, inv.parser.listDelimiter)...)
	} else {
		inv.record(arg, value)
	}

	return nil
}

// isRegisteredName reports whether raw is '--' or addresses a named argument of the command
func (inv *invocation) isRegisteredName(raw string) bool {
	tok := parse.Lex(raw, inv.cmd.hasShort)
	if tok.Kind == parse.TokenTerminator {
		return true
	}
	if !tok.IsNamed() {
		return false
	}
	_, ok := inv.cmd.namedArgument(tok.Name, tok.Kind == parse.TokenShort)
	return ok
}

// assignPositionals matches positional tokens in declaration order. A repeatable last positional absorbs the rest,
// each token split on the list delimiter.
func (inv *invocation) assignPositionals() error {
	for _, arg := range inv.cmd.positionals {
		if arg.Repeatable {
			if inv.positionals.Len() > 0 {
				var values []string
				for _, raw := range inv.positionals.Slice() {
					values = append(values, util.SplitList(raw, inv.parser.listDelimiter)...)
				}
				inv.record(arg, values...)
				inv.positionals.Clear()
			}
			break
		}
		value, ok := inv.positionals.Dequeue()
		if !ok {
			break
		}
		inv.record(arg, value)
	}

	if extra, ok := inv.positionals.Front(); ok {
		return inv.fail(errs.ErrExcessPositional.WithArgs(extra, inv.pathString()), func(e *ParseError) {
			e.Input = extra
		})
	}

	return inv.requireAll(inv.cmd.positionals)
}

// convert runs the converters in order of first appearance
func (inv *invocation) convert() error {
	inv.converted = make(map[*Argument][]any, len(inv.seen))
	for _, arg := range inv.seen {
		if arg.IsFlag() {
			inv.converted[arg] = []any{true}
			continue
		}
		values := make([]any, 0, len(inv.raw[arg]))
		for _, raw := range inv.raw[arg] {
			v, err := arg.Converter.Parse(raw)
			if err != nil {
				return inv.fail(errs.ErrTypeParse.WithArgs(raw, arg.Name, arg.TypeName()).Wrap(err),
					func(e *ParseError) {
						e.Argument, e.Input, e.TargetType = arg.Name, raw, arg.TypeName()
					})
			}
			values = append(values, v)
		}
		inv.converted[arg] = values
	}

	return nil
}

// checkRequired fails on the first required argument which is neither supplied nor defaulted
func (inv *invocation) checkRequired() error {
	return inv.requireAll(inv.cmd.arguments)
}

// requireAll checks args in order. A required member of an exclusive group is satisfied by any supplied member of
// that group.
func (inv *invocation) requireAll(args []*Argument) error {
	for _, arg := range args {
		if !arg.Required || arg.HasDefault() || inv.isPresent(arg.Name) {
			continue
		}
		if group, ok := arg.ExclusiveGroup(); ok && inv.anyPresent(group) {
			continue
		}
		return inv.fail(errs.ErrRequiredArgument.WithArgs(arg.Name), func(e *ParseError) {
			e.Argument = arg.Name
		})
	}

	return nil
}

// checkGroups validates groups in registration order and stops at the first violation
func (inv *invocation) checkGroups() error {
	for it := inv.cmd.groups.Front(); it != nil; it = it.Next() {
		group := it.Value()
		if err := group.Validate(inv.isPresent); err != nil {
			te, ok := err.(i18n.TranslatableError)
			if !ok {
				te = errs.ErrGroupParse.Wrap(err)
			}
			return inv.fail(te, func(e *ParseError) {
				e.Group = group.Name
			})
		}
	}

	return nil
}

func (inv *invocation) context() *Context {
	ctx := &Context{
		command: inv.cmd,
		path:    inv.cmd.Path(),
		values:  make(map[string]*resolvedValue, len(inv.cmd.arguments)),
	}
	for _, arg := range inv.cmd.arguments {
		if values, ok := inv.converted[arg]; ok {
			ctx.values[arg.Name] = &resolvedValue{arg: arg, values: values, source: types.SourceCommandLine}
		} else if arg.HasDefault() {
			ctx.values[arg.Name] = &resolvedValue{arg: arg, values: arg.defaults, source: types.SourceDefault}
		} else {
			continue
		}
		ctx.order = append(ctx.order, arg.Name)
	}

	return ctx
}

func (inv *invocation) record(arg *Argument, values ...string) {
	if _, ok := inv.raw[arg]; !ok {
		inv.seen = append(inv.seen, arg)
		inv.raw[arg] = []string{}
	}
	inv.raw[arg] = append(inv.raw[arg], values...)
}

func (inv *invocation) isPresent(name string) bool {
	arg, ok := inv.cmd.argument(name)
	if !ok {
		return false
	}
	_, ok = inv.raw[arg]
	return ok
}

func (inv *invocation) anyPresent(group string) bool {
	g, ok := inv.cmd.groups.Get(group)
	if !ok {
		return false
	}
	for _, m := range g.Members() {
		if inv.isPresent(m) {
			return true
		}
	}
	return false
}

// pathString names the resolved command for messages; the root is named after the executable
func (inv *invocation) pathString() string {
	if inv.cmd.IsRoot() {
		return inv.cmd.Name
	}
	return inv.cmd.PathString()
}

func (inv *invocation) fail(err i18n.TranslatableError, detail func(e *ParseError)) error {
	pe := &ParseError{Command: inv.cmd.Path(), err: err}
	if detail != nil {
		detail(pe)
	}
	return pe
}
