package chaincli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/napalu/chaincli/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newRendererTree(t *testing.T) *CommandTree {
	t.Helper()
	tree, err := NewCommandTree("deployer",
		WithCommandDescription("Ships builds"),
		WithArgument(NewFlag("verbose", WithShortFlag("v"), WithDescription("chatty output"))),
		WithSubcommands(
			NewCommand("deploy",
				WithCommandDescription("Deploy a build"),
				WithLongDescription("Deploys the selected build to one environment."),
				WithArguments(
					NewPositional("env", Enum("dev", "prod"), SetRequired(true), WithDescription("target environment")),
					NewPositional("hosts", String, SetRepeatable(true)),
					NewFlag("json"),
					NewFlag("yaml"),
					NewOption("tag", String, WithShortFlag("t"), SetRepeatable(true), WithDefaultValues("a", "b")),
					NewOption("note", String, WithDescription(strings.Repeat("very long description ", 5))),
				),
				WithExclusiveGroup("format", "json", "yaml"),
				WithSubcommands(NewCommand("rollback", WithCommandDescription("Undo the last deploy"))),
			),
			NewCommand("status", WithCommandDescription("Show status")),
		))
	require.NoError(t, err)
	return tree
}

func TestDefaultRenderer_AppUsage(t *testing.T) {
	tree := newRendererTree(t)
	r := NewRenderer(nil)

	var buf bytes.Buffer
	cfg := AppConfig{Name: "deployer", Title: "Deployer", Description: "Ships builds", Version: "1.2.3"}
	require.NoError(t, r.AppUsage(&buf, cfg, tree))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no styling when not writing to a terminal")
	assert.True(t, strings.HasPrefix(out, "Deployer 1.2.3\nShips builds\n"))
	assert.Contains(t, out, "Usage: deployer <command> [arguments]")
	assert.Contains(t, out, "Commands:\n **  deploy \"Deploy a build\"\n └─   rollback \"Undo the last deploy\"\n **  status \"Show status\"\n")
	assert.Contains(t, out, "--verbose, -v  bool (optional)  chatty output")
}

func TestDefaultRenderer_CommandUsage(t *testing.T) {
	tree := newRendererTree(t)
	deploy, ok := tree.Find("deploy")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).CommandUsage(&buf, deploy))
	out := buf.String()

	assert.Contains(t, out, "Usage: deployer deploy <command> [arguments] <env> [<hosts>...]\n")
	assert.Contains(t, out, "\nDeploy a build\n")
	assert.Contains(t, out, "\nDeploys the selected build to one environment.\n")
	assert.Contains(t, out, "<env>")
	assert.Contains(t, out, "one of [dev|prod] (required)")
	assert.Contains(t, out, "--tag, -t")
	assert.Contains(t, out, "string (optional, repeatable, defaults to: a,b)")
	assert.Contains(t, out, "Argument groups:\n  format (exclusive): --json | --yaml\n")
	assert.Contains(t, out, "Commands:\n  rollback  Undo the last deploy\n")

	// the long description does not fit in 80 columns and moves to its own line
	assert.Contains(t, out, "\n      "+strings.Repeat("very long description ", 5)+"\n")
}

func TestDefaultRenderer_Helpers(t *testing.T) {
	r := NewRenderer(nil)
	assert.Equal(t, "--force, -f", r.ArgumentName(NewFlag("force", WithShortFlag("f"))))
	assert.Equal(t, "<src>", r.ArgumentName(NewPositional("src", String)))
	assert.Equal(t, "<files>...", r.ArgumentName(NewPositional("files", String, SetRepeatable(true))))
	assert.Equal(t, "int (required)", r.ArgumentDetails(NewOption("n", Int, SetRequired(true))))

	cmd := NewCommand("c", WithArguments(
		NewOption("user", String, SetRequired(true)),
		NewOption("password", String),
		NewOption("realm", String)),
		WithGroup(NewInclusiveGroup("auth", "user", "password").WithOptionalMembers("realm")))
	require.NoError(t, cmd.Err())
	assert.Equal(t, "auth (inclusive): --user, --password, [--realm]", r.GroupUsage(cmd.Groups()[0]))
}

func TestDefaultRenderer_Version(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).Version(&buf, AppConfig{Name: "deployer", Version: "1.2.3"}))
	assert.Equal(t, "deployer version 1.2.3\n", buf.String())
}

func TestDefaultRenderer_Translated(t *testing.T) {
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	bundle.SetDefaultLanguage(language.German)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(bundle).AppUsage(&buf, AppConfig{Name: "deployer"}, newRendererTree(t)))
	assert.Contains(t, buf.String(), bundle.T("chaincli.msg.usage")+":")
	assert.NotContains(t, buf.String(), "Usage:")
}

func TestDefaultRenderer_PrettyPrintConfig(t *testing.T) {
	r := NewRenderer(nil).WithPrettyPrintConfig(PrettyPrintConfig{
		NewCommandPrefix: "* ",
		DefaultPrefix:    "- ",
		TerminalPrefix:   "- ",
		LevelBindPrefix:  "..",
	})
	var buf bytes.Buffer
	require.NoError(t, r.AppUsage(&buf, AppConfig{Name: "deployer"}, newRendererTree(t)))
	assert.Contains(t, buf.String(), "* deploy \"Deploy a build\"\n- ..rollback \"Undo the last deploy\"\n")
}
