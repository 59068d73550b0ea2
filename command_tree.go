package chaincli

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/internal/util"
	"github.com/napalu/chaincli/types/orderedmap"
	"github.com/napalu/chaincli/types/queue"
)

const noParent = -1

// node is an arena slot; children maps a subcommand name to its slot index in registration order
type node struct {
	cmd      *Command
	parent   int
	children *orderedmap.OrderedMap[string, int]
}

// CommandTree is the registry of commands. Commands live in an arena addressed by index; every node keeps the index
// of its parent and an ordered index of its children. The root node is named after the executable and is never
// matched on the command line.
//
// Registration is single-threaded. After Freeze the tree rejects changes and may be shared by concurrent parsers.
type CommandTree struct {
	nodes  []node
	frozen atomic.Bool
}

// NewCommandTree creates a tree whose root command is configured with configs
func NewCommandTree(rootName string, configs ...ConfigureCommandFunc) (*CommandTree, error) {
	if rootName == "" {
		return nil, errs.ErrEmptyName
	}
	root := NewCommand(rootName, configs...)
	if root.err != nil {
		return nil, root.err
	}

	t := &CommandTree{}
	t.attach(root, noParent)
	for _, sub := range root.Subcommands {
		if err := t.Insert(sub); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Root returns the root command
func (t *CommandTree) Root() *Command {
	return t.nodes[0].cmd
}

// Len returns the number of commands including the root
func (t *CommandTree) Len() int {
	return len(t.nodes)
}

// Freeze makes the tree and its commands read-only
func (t *CommandTree) Freeze() {
	t.frozen.Store(true)
}

// IsFrozen reports whether Freeze was called
func (t *CommandTree) IsFrozen() bool {
	return t.frozen.Load()
}

// Insert registers cmd, and recursively the subcommands attached to it, below the command addressed by parentPath.
// An empty parentPath inserts below the root. The whole subtree is checked before anything is registered.
func (t *CommandTree) Insert(cmd *Command, parentPath ...string) error {
	if t.IsFrozen() {
		return errs.ErrTreeFrozen
	}

	parent := 0
	for i, name := range parentPath {
		idx, ok := t.nodes[parent].children.Get(name)
		if !ok {
			return errs.ErrCommandNotFound.WithArgs(name, strings.Join(parentPath[:i+1], pathSep))
		}
		parent = idx
	}

	if cmd == nil {
		return errs.ErrEmptyName
	}
	if t.nodes[parent].children.Has(cmd.Name) {
		return errs.ErrDuplicateCommand.WithArgs(cmd.Name, strings.Join(parentPath, pathSep))
	}
	if err := checkSubtree(cmd, parentPath); err != nil {
		return err
	}

	t.insert(cmd, parent)
	return nil
}

// Find returns the command addressed by path below the root; an empty path returns the root
func (t *CommandTree) Find(path ...string) (*Command, bool) {
	idx := 0
	for _, name := range path {
		next, ok := t.nodes[idx].children.Get(name)
		if !ok {
			return nil, false
		}
		idx = next
	}
	return t.nodes[idx].cmd, true
}

// Resolve consumes the longest prefix of tokens naming a chain of commands below the root. It returns the deepest
// matched command (the root when nothing matches) and the tokens left over. Matching is exact and case-sensitive.
func (t *CommandTree) Resolve(tokens []string) (*Command, []string) {
	idx, i := 0, 0
	for ; i < len(tokens); i++ {
		next, ok := t.nodes[idx].children.Get(tokens[i])
		if !ok {
			break
		}
		idx = next
	}
	return t.nodes[idx].cmd, tokens[i:]
}

// Walk visits commands depth-first in registration order, starting with the root at level 0. Returning false from fn
// skips the subcommands of the visited command.
func (t *CommandTree) Walk(fn func(cmd *Command, level int) bool) {
	type visit struct{ idx, level int }
	stack := queue.New(visit{0, 0})
	for stack.Len() > 0 {
		v, _ := stack.Pop()
		if !fn(t.nodes[v.idx].cmd, v.level) {
			continue
		}
		// push in reverse so the first child is visited first
		for it := t.nodes[v.idx].children.Back(); it != nil; it = it.Next() {
			stack.Push(visit{it.Value(), v.level + 1})
		}
	}
}

// Print writes the commands below the root as an indented tree
func (t *CommandTree) Print(w io.Writer, config PrettyPrintConfig) error {
	var err error
	t.Walk(func(cmd *Command, level int) bool {
		if err != nil || level == 0 {
			return err == nil
		}
		prefix := config.DefaultPrefix
		switch {
		case level == 1:
			prefix = config.NewCommandPrefix
		case !cmd.HasChildren():
			prefix = config.TerminalPrefix
		}
		_, err = fmt.Fprintf(w, "%s%s%s %q\n", prefix, strings.Repeat(config.LevelBindPrefix, level-1),
			cmd.Name, cmd.Description)
		return err == nil
	})
	return err
}

func (t *CommandTree) insert(cmd *Command, parent int) {
	idx := t.attach(cmd, parent)
	for _, sub := range cmd.Subcommands {
		t.insert(sub, idx)
	}
}

func (t *CommandTree) attach(cmd *Command, parent int) int {
	cmd.ensureInit()
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		cmd:      cmd,
		parent:   parent,
		children: orderedmap.NewOrderedMap[string, int](),
	})
	if parent != noParent {
		t.nodes[parent].children.Set(cmd.Name, idx)
	}
	cmd.tree = t
	cmd.index = idx
	return idx
}

func (t *CommandTree) parentOf(idx int) (*Command, bool) {
	p := t.nodes[idx].parent
	if p == noParent {
		return nil, false
	}
	return t.nodes[p].cmd, true
}

func (t *CommandTree) childrenOf(idx int) []*Command {
	children := make([]*Command, 0, t.nodes[idx].children.Count())
	for it := t.nodes[idx].children.Front(); it != nil; it = it.Next() {
		children = append(children, t.nodes[it.Value()].cmd)
	}
	return children
}

func (t *CommandTree) pathOf(idx int) []string {
	var path []string
	for i := idx; i > 0; i = t.nodes[i].parent {
		path = append(path, t.nodes[i].cmd.Name)
	}
	util.Reverse(path)
	return path
}

// checkSubtree validates cmd and its pending subcommands before anything is attached
func checkSubtree(cmd *Command, parentPath []string) error {
	return checkSubtreeSeen(cmd, parentPath, map[*Command]struct{}{})
}

func checkSubtreeSeen(cmd *Command, parentPath []string, seen map[*Command]struct{}) error {
	if cmd.err != nil {
		return cmd.err
	}
	if cmd.Name == "" {
		return errs.ErrEmptyName
	}
	if err := checkName(cmd.Name); err != nil {
		return errs.ErrInvalidCommandName.WithArgs(cmd.Name).Wrap(err)
	}
	_, again := seen[cmd]
	if cmd.tree != nil || again {
		return errs.ErrDuplicateCommand.WithArgs(cmd.Name, strings.Join(parentPath, pathSep))
	}
	seen[cmd] = struct{}{}

	path := append(append([]string(nil), parentPath...), cmd.Name)
	names := make(map[string]struct{}, len(cmd.Subcommands))
	for _, sub := range cmd.Subcommands {
		if sub == nil {
			return errs.ErrEmptyName
		}
		if _, dup := names[sub.Name]; dup {
			return errs.ErrDuplicateCommand.WithArgs(sub.Name, strings.Join(path, pathSep))
		}
		names[sub.Name] = struct{}{}
		if err := checkSubtreeSeen(sub, path, seen); err != nil {
			return err
		}
	}
	return nil
}
