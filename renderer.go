package chaincli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/napalu/chaincli/i18n"
	"github.com/napalu/chaincli/internal/messages"
	"github.com/napalu/chaincli/internal/util"
)

// Renderer writes help and version output for an App
type Renderer interface {
	// AppUsage describes the application and lists its command tree
	AppUsage(w io.Writer, cfg AppConfig, tree *CommandTree) error
	// CommandUsage describes a single command, its arguments, groups and direct subcommands
	CommandUsage(w io.Writer, cmd *Command) error
	// Version prints the application version
	Version(w io.Writer, cfg AppConfig) error
}

// DefaultRenderer is the Renderer used by App. Headings and names are styled with lipgloss when w is a color
// terminal and written as plain text otherwise.
type DefaultRenderer struct {
	bundle      *i18n.Bundle
	terminal    util.Terminal
	printConfig PrettyPrintConfig
}

// NewRenderer creates a DefaultRenderer translating its labels with bundle. A nil bundle uses i18n.Default.
func NewRenderer(bundle *i18n.Bundle) *DefaultRenderer {
	if bundle == nil {
		bundle = i18n.Default()
	}
	return &DefaultRenderer{
		bundle:      bundle,
		terminal:    util.SystemTerminal,
		printConfig: DefaultPrettyPrintConfig,
	}
}

// WithPrettyPrintConfig sets how the command tree is drawn in AppUsage
func (r *DefaultRenderer) WithPrettyPrintConfig(config PrettyPrintConfig) *DefaultRenderer {
	r.printConfig = config
	return r
}

type styles struct {
	heading lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	lr := lipgloss.NewRenderer(w)
	return styles{
		heading: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		name:    lr.NewStyle().Foreground(lipgloss.Color("212")),
		muted:   lr.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// AppUsage writes the title, description, usage line, command tree and root arguments
func (r *DefaultRenderer) AppUsage(w io.Writer, cfg AppConfig, tree *CommandTree) error {
	st := newStyles(w)
	root := tree.Root()
	var sb strings.Builder

	title := cfg.Title
	if title == "" {
		title = root.Name
	}
	if cfg.Version != "" {
		title += " " + cfg.Version
	}
	sb.WriteString(st.heading.Render(title) + "\n")
	if cfg.Description != "" {
		sb.WriteString(cfg.Description + "\n")
	}

	sb.WriteString("\n" + r.usageLine(st, root) + "\n")

	if root.HasChildren() {
		sb.WriteString("\n" + st.heading.Render(r.bundle.T(messages.MsgCommandsKey)+":") + "\n")
		if err := tree.Print(&sb, r.printConfig); err != nil {
			return err
		}
	}

	r.writeArguments(&sb, st, root, r.width(w))
	r.writeGroups(&sb, st, root)

	_, err := io.WriteString(w, sb.String())
	return err
}

// CommandUsage writes the usage line, descriptions, arguments, groups and direct subcommands of cmd
func (r *DefaultRenderer) CommandUsage(w io.Writer, cmd *Command) error {
	st := newStyles(w)
	var sb strings.Builder

	sb.WriteString(r.usageLine(st, cmd) + "\n")
	if cmd.Description != "" {
		sb.WriteString("\n" + cmd.Description + "\n")
	}
	if cmd.LongDescription != "" {
		sb.WriteString("\n" + cmd.LongDescription + "\n")
	}

	r.writeArguments(&sb, st, cmd, r.width(w))
	r.writeGroups(&sb, st, cmd)

	if children := cmd.Children(); len(children) > 0 {
		sb.WriteString("\n" + st.heading.Render(r.bundle.T(messages.MsgCommandsKey)+":") + "\n")
		width := 0
		for _, c := range children {
			width = max(width, len(c.Name))
		}
		for _, c := range children {
			sb.WriteString("  " + st.name.Render(pad(c.Name, width)))
			if c.Description != "" {
				sb.WriteString("  " + c.Description)
			}
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Version writes "<name> version <version>"
func (r *DefaultRenderer) Version(w io.Writer, cfg AppConfig) error {
	name := cfg.Title
	if name == "" {
		name = cfg.Name
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", name, r.bundle.T(messages.MsgVersionKey), cfg.Version)
	return err
}

// ArgumentName returns the display name of an argument: '--name, -n' for named arguments and '<name>' for
// positionals
func (r *DefaultRenderer) ArgumentName(arg *Argument) string {
	if arg.IsPositional() {
		if arg.Repeatable {
			return "<" + arg.Name + ">..."
		}
		return "<" + arg.Name + ">"
	}
	name := longPrefix + arg.Name
	if arg.Short != "" {
		name += ", " + shortPrefix + arg.Short
	}
	return name
}

// ArgumentDetails returns the type, requirement, repeatability and defaults of an argument,
// e.g. "string (optional, repeatable, defaults to: a,b)"
func (r *DefaultRenderer) ArgumentDetails(arg *Argument) string {
	var attrs []string
	if arg.Required {
		attrs = append(attrs, r.bundle.T(messages.MsgRequiredKey))
	} else {
		attrs = append(attrs, r.bundle.T(messages.MsgOptionalKey))
	}
	if arg.Repeatable {
		attrs = append(attrs, r.bundle.T(messages.MsgRepeatableKey))
	}
	if arg.HasDefault() {
		attrs = append(attrs, r.bundle.T(messages.MsgDefaultsToKey)+": "+strings.Join(arg.DefaultValues, ","))
	}

	return arg.TypeName() + " (" + strings.Join(attrs, ", ") + ")"
}

// GroupUsage returns a one-line description of a group, e.g. "output (exclusive): --json | --yaml"
func (r *DefaultRenderer) GroupUsage(group *ArgumentGroup) string {
	mode, sep := r.bundle.T(messages.MsgInclusiveKey), ", "
	if group.IsExclusive() {
		mode, sep = r.bundle.T(messages.MsgExclusiveKey), " | "
	}
	members := group.Members()
	for i, m := range members {
		members[i] = longPrefix + m
		if !group.IsMemberRequired(m) {
			members[i] = "[" + members[i] + "]"
		}
	}

	return fmt.Sprintf("%s (%s): %s", group.Name, mode, strings.Join(members, sep))
}

func (r *DefaultRenderer) usageLine(st styles, cmd *Command) string {
	parts := []string{rootName(cmd)}
	parts = append(parts, cmd.Path()...)
	if cmd.HasChildren() {
		parts = append(parts, "<command>")
	}
	if len(cmd.NamedArguments()) > 0 {
		parts = append(parts, "["+strings.ToLower(r.bundle.T(messages.MsgArgumentsKey))+"]")
	}
	for _, p := range cmd.Positionals() {
		name := r.ArgumentName(p)
		if !p.Required {
			name = "[" + name + "]"
		}
		parts = append(parts, name)
	}

	return st.heading.Render(r.bundle.T(messages.MsgUsageKey)+":") + " " + strings.Join(parts, " ")
}

// writeArguments lists positionals first, then named arguments. Descriptions which do not fit next to the names
// move to their own line.
func (r *DefaultRenderer) writeArguments(sb *strings.Builder, st styles, cmd *Command, width int) {
	args := append(cmd.Positionals(), cmd.NamedArguments()...)
	if len(args) == 0 {
		return
	}

	sb.WriteString("\n" + st.heading.Render(r.bundle.T(messages.MsgArgumentsKey)+":") + "\n")
	nameWidth, detailWidth := 0, 0
	for _, arg := range args {
		nameWidth = max(nameWidth, len(r.ArgumentName(arg)))
		detailWidth = max(detailWidth, len(r.ArgumentDetails(arg)))
	}

	indent := strings.Repeat(" ", 6)
	for _, arg := range args {
		line := "  " + st.name.Render(pad(r.ArgumentName(arg), nameWidth)) + "  " +
			st.muted.Render(pad(r.ArgumentDetails(arg), detailWidth))
		switch {
		case arg.Description == "":
			sb.WriteString(strings.TrimRight(line, " ") + "\n")
		case 2+nameWidth+2+detailWidth+2+len(arg.Description) <= width:
			sb.WriteString(line + "  " + arg.Description + "\n")
		default:
			sb.WriteString(strings.TrimRight(line, " ") + "\n" + indent + arg.Description + "\n")
		}
	}
}

func (r *DefaultRenderer) writeGroups(sb *strings.Builder, st styles, cmd *Command) {
	groups := cmd.Groups()
	if len(groups) == 0 {
		return
	}
	sb.WriteString("\n" + st.heading.Render(r.bundle.T(messages.MsgGroupsKey)+":") + "\n")
	for _, g := range groups {
		sb.WriteString("  " + r.GroupUsage(g) + "\n")
	}
}

func (r *DefaultRenderer) width(w io.Writer) int {
	f, _ := w.(*os.File)
	return util.TerminalWidth(r.terminal, f)
}

func rootName(cmd *Command) string {
	if cmd.tree == nil {
		return cmd.Name
	}
	return cmd.tree.Root().Name
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
