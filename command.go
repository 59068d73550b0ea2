package chaincli

import (
	"strings"

	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/types/orderedmap"
)

// Command is a node of the CommandTree. It declares the arguments and argument groups accepted when it is the
// deepest command matched on the command line.
//
// Subcommands attached with WithSubcommands are registered together with the command by CommandTree.Insert.
type Command struct {
	Name            string
	Description     string
	LongDescription string
	Callback        CommandFunc
	Subcommands     []*Command

	arguments   []*Argument
	positionals []*Argument
	named       *orderedmap.OrderedMap[string, *Argument]
	shorts      map[string]*Argument
	groups      *orderedmap.OrderedMap[string, *ArgumentGroup]
	err         error

	// set by CommandTree.Insert
	tree  *CommandTree
	index int
}

// NewCommand creates and returns a new Command. The first configuration error is kept and reported when the command
// is inserted into a CommandTree; use Err to check it earlier.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		Name:   name,
		named:  orderedmap.NewOrderedMap[string, *Argument](),
		shorts: map[string]*Argument{},
		groups: orderedmap.NewOrderedMap[string, *ArgumentGroup](),
		index:  -1,
	}
	if err := cmd.Set(configs...); err != nil {
		cmd.err = err
	}

	return cmd
}

// Set applies configs in order and stops at the first error
func (c *Command) Set(configs ...ConfigureCommandFunc) error {
	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// Err returns the first error recorded while configuring the command
func (c *Command) Err() error {
	return c.err
}

// AddArgument validates and registers an argument. Long and short names share one namespace per command; positional
// arguments are matched in the order they are added.
func (c *Command) AddArgument(arg *Argument) error {
	c.ensureInit()
	if err := c.checkMutable(); err != nil {
		return err
	}
	if arg == nil {
		return errs.ErrInvalidArgumentType.WithArgs("<nil>", "argument is nil")
	}
	if err := arg.validate(); err != nil {
		return err
	}

	if c.nameTaken(arg.Name) {
		return errs.ErrDuplicateArgument.WithArgs(arg.Name, c.Name)
	}
	if arg.Short != "" && (c.nameTaken(arg.Short) || arg.Short == arg.Name) {
		return errs.ErrDuplicateArgument.WithArgs(arg.Short, c.Name)
	}

	if arg.IsPositional() {
		if n := len(c.positionals); n > 0 {
			last := c.positionals[n-1]
			if last.Repeatable {
				return errs.ErrInvalidArgumentType.WithArgs(arg.Name,
					"positional argument follows repeatable positional '"+last.Name+"'")
			}
			if arg.Required && !last.Required {
				return errs.ErrInvalidArgumentType.WithArgs(arg.Name,
					"required positional argument follows optional positional '"+last.Name+"'")
			}
		}
		c.positionals = append(c.positionals, arg)
	} else {
		c.named.Set(arg.Name, arg)
		if arg.Short != "" {
			c.shorts[arg.Short] = arg
		}
	}
	c.arguments = append(c.arguments, arg)

	return nil
}

// AddGroup registers an argument group. All members must already be declared on the command and an argument can
// belong to at most one exclusive group.
func (c *Command) AddGroup(group *ArgumentGroup) error {
	c.ensureInit()
	if err := c.checkMutable(); err != nil {
		return err
	}
	if group == nil || group.Name == "" {
		return errs.ErrEmptyName
	}
	if c.groups.Has(group.Name) {
		return errs.ErrDuplicateGroup.WithArgs(group.Name, c.Name)
	}
	if group.members.Count() == 0 {
		return errs.ErrEmptyGroup.WithArgs(group.Name)
	}

	members := make([]*Argument, 0, group.members.Count())
	for _, name := range group.Members() {
		arg, ok := c.argument(name)
		if !ok || arg.Name != name {
			return errs.ErrUnknownGroupMember.WithArgs(group.Name, name)
		}
		if group.IsExclusive() {
			if other, taken := arg.ExclusiveGroup(); taken {
				return errs.ErrOverlappingExclusiveGroup.WithArgs(name, other)
			}
		}
		members = append(members, arg)
	}

	if group.IsExclusive() {
		for _, arg := range members {
			arg.exclusiveGroup = group.Name
		}
	}
	group.arguments = members
	c.groups.Set(group.Name, group)

	return nil
}

// Argument returns the argument declared under name. name may be a long name, a short form, or either one with its
// command-line prefix ('--name', '-n').
func (c *Command) Argument(name string) (*Argument, bool) {
	if strings.HasPrefix(name, longPrefix) {
		return c.argument(strings.TrimPrefix(name, longPrefix))
	}
	if strings.HasPrefix(name, shortPrefix) {
		if a, ok := c.shorts[strings.TrimPrefix(name, shortPrefix)]; ok {
			return a, true
		}
		return c.argument(strings.TrimPrefix(name, shortPrefix))
	}
	return c.argument(name)
}

// Arguments returns all arguments in registration order
func (c *Command) Arguments() []*Argument {
	return append([]*Argument(nil), c.arguments...)
}

// Positionals returns the positional arguments in matching order
func (c *Command) Positionals() []*Argument {
	return append([]*Argument(nil), c.positionals...)
}

// NamedArguments returns flags and options in registration order
func (c *Command) NamedArguments() []*Argument {
	c.ensureInit()
	return c.named.Values()
}

// Groups returns the argument groups in registration order
func (c *Command) Groups() []*ArgumentGroup {
	c.ensureInit()
	return c.groups.Values()
}

// Parent returns the parent command, or false for the root and for commands not yet inserted
func (c *Command) Parent() (*Command, bool) {
	if c.tree == nil {
		return nil, false
	}
	return c.tree.parentOf(c.index)
}

// Children returns the registered subcommands in registration order
func (c *Command) Children() []*Command {
	if c.tree == nil {
		return nil
	}
	return c.tree.childrenOf(c.index)
}

// HasChildren reports whether subcommands are registered below this command
func (c *Command) HasChildren() bool {
	return c.tree != nil && c.tree.nodes[c.index].children.Count() > 0
}

// IsRoot reports whether the command is the root of its tree
func (c *Command) IsRoot() bool {
	return c.tree != nil && c.index == 0
}

// Path returns the command names from the first level below the root down to this command. The root has an empty
// path.
func (c *Command) Path() []string {
	if c.tree == nil {
		return nil
	}
	return c.tree.pathOf(c.index)
}

// PathString returns Path joined for display
func (c *Command) PathString() string {
	return strings.Join(c.Path(), pathSep)
}

// argument looks a name up in the long namespace, then the short one
func (c *Command) argument(name string) (*Argument, bool) {
	c.ensureInit()
	if a, ok := c.named.Get(name); ok {
		return a, true
	}
	for _, p := range c.positionals {
		if p.Name == name {
			return p, true
		}
	}
	a, ok := c.shorts[name]
	return a, ok
}

// namedArgument resolves a command-line name: long names only match long forms and short names short forms
func (c *Command) namedArgument(name string, short bool) (*Argument, bool) {
	c.ensureInit()
	if short {
		a, ok := c.shorts[name]
		return a, ok
	}
	return c.named.Get(name)
}

func (c *Command) hasShort(name string) bool {
	_, ok := c.shorts[name]
	return ok
}

func (c *Command) nameTaken(name string) bool {
	_, ok := c.argument(name)
	return ok
}

func (c *Command) checkMutable() error {
	if c.tree != nil && c.tree.IsFrozen() {
		return errs.ErrTreeFrozen
	}
	return nil
}

// ensureInit allows commands declared as struct literals
func (c *Command) ensureInit() {
	if c.named == nil {
		c.named = orderedmap.NewOrderedMap[string, *Argument]()
	}
	if c.shorts == nil {
		c.shorts = map[string]*Argument{}
	}
	if c.groups == nil {
		c.groups = orderedmap.NewOrderedMap[string, *ArgumentGroup]()
	}
}
