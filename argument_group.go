package chaincli

import (
	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/types"
	"github.com/napalu/chaincli/types/orderedmap"
)

// ArgumentGroup is a constraint over a set of arguments of the same command. Members are referenced by name;
// the group never owns them.
//
// In an Exclusive group at most one member may be present. In an Inclusive group, as soon as one member is present,
// every member which is required within the group must be present too. Members are required within the group unless
// marked with WithOptionalMembers.
type ArgumentGroup struct {
	Name string
	Mode types.GroupMode
	// member name -> required within the group
	members *orderedmap.OrderedMap[string, bool]
	// set by Command.AddGroup
	arguments []*Argument
}

// NewExclusiveGroup creates a group in which at most one of members may be supplied
func NewExclusiveGroup(name string, members ...string) *ArgumentGroup {
	return newGroup(name, types.Exclusive, members)
}

// NewInclusiveGroup creates a group whose members must be supplied together
func NewInclusiveGroup(name string, members ...string) *ArgumentGroup {
	return newGroup(name, types.Inclusive, members)
}

func newGroup(name string, mode types.GroupMode, members []string) *ArgumentGroup {
	g := &ArgumentGroup{
		Name:    name,
		Mode:    mode,
		members: orderedmap.NewOrderedMap[string, bool](),
	}
	for _, m := range members {
		g.members.Set(m, true)
	}

	return g
}

// WithOptionalMembers adds names to the group as members which are not required within the group. Existing members
// keep their position.
func (g *ArgumentGroup) WithOptionalMembers(names ...string) *ArgumentGroup {
	for _, n := range names {
		g.members.Set(n, false)
	}
	return g
}

// IsExclusive reports whether at most one member may be present
func (g *ArgumentGroup) IsExclusive() bool {
	return g.Mode == types.Exclusive
}

// IsInclusive reports whether members must be present together
func (g *ArgumentGroup) IsInclusive() bool {
	return g.Mode == types.Inclusive
}

// Members returns the member names in declaration order
func (g *ArgumentGroup) Members() []string {
	return g.members.Keys()
}

// Has reports whether name is a member of the group
func (g *ArgumentGroup) Has(name string) bool {
	return g.members.Has(name)
}

// IsMemberRequired reports whether the member must be present once another member is present
func (g *ArgumentGroup) IsMemberRequired(name string) bool {
	required, _ := g.members.Get(name)
	return required
}

// IsRequired reports whether the group as a whole must be satisfied: an exclusive group is required when all its
// members are required arguments, an inclusive group when any member is. Always false before the group is
// registered with a command.
func (g *ArgumentGroup) IsRequired() bool {
	if len(g.arguments) == 0 {
		return false
	}
	if g.IsExclusive() {
		for _, a := range g.arguments {
			if !a.Required {
				return false
			}
		}
		return true
	}
	for _, a := range g.arguments {
		if a.Required {
			return true
		}
	}
	return false
}

// Validate checks the group against the supplied presence function and returns the first violation
func (g *ArgumentGroup) Validate(isPresent func(name string) bool) error {
	switch g.Mode {
	case types.Exclusive:
		first := ""
		for it := g.members.Front(); it != nil; it = it.Next() {
			if !isPresent(it.Key()) {
				continue
			}
			if first != "" {
				return errs.ErrExclusiveGroup.WithArgs(first, it.Key(), g.Name)
			}
			first = it.Key()
		}
	case types.Inclusive:
		anyPresent := false
		for _, m := range g.members.Keys() {
			if isPresent(m) {
				anyPresent = true
				break
			}
		}
		if !anyPresent {
			return nil
		}
		for it := g.members.Front(); it != nil; it = it.Next() {
			if it.Value() && !isPresent(it.Key()) {
				return errs.ErrInclusiveGroup.WithArgs(it.Key(), g.Name)
			}
		}
	}

	return nil
}
