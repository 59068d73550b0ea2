package chaincli

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/napalu/chaincli/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	stdout, stderr *bytes.Buffer
	deployed       []string
}

func newTestApp(t *testing.T, configs ...ConfigureAppFunc) *testApp {
	t.Helper()
	ta := &testApp{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	deploy := NewCommand("deploy",
		WithCommandDescription("Deploy a build"),
		WithArguments(
			NewPositional("env", String, SetRequired(true)),
			NewFlag("force", WithShortFlag("f"))),
		WithCallback(func(ctx *Context) error {
			env, _, _ := ctx.GetString("env")
			if env == "broken" {
				return errors.New("deployment failed")
			}
			ta.deployed = append(ta.deployed, env)
			return nil
		}))
	status := NewCommand("status",
		WithCommandDescription("Inspect deployments"),
		WithSubcommands(NewCommand("history", WithCommandDescription("List deployments"))))

	all := append([]ConfigureAppFunc{
		WithOutput(ta.stdout, ta.stderr),
		WithVersion("1.0.0"),
		WithAppDescription("Ships builds"),
		WithAppCommand(deploy),
		WithAppCommand(status),
	}, configs...)
	app, err := NewApp("deployer", all...)
	require.NoError(t, err)
	ta.App = app
	return ta
}

func TestApp_Dispatch(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.Execute([]string{"deploy", "prod", "--force"}))
	assert.Equal(t, []string{"prod"}, app.deployed)
	assert.True(t, app.Tree().IsFrozen())
	assert.ErrorIs(t, app.WithCommand(NewCommand("late")), errs.ErrTreeFrozen)

	assert.Equal(t, 0, app.RunString(`deploy "qa env"`))
	assert.Equal(t, []string{"prod", "qa env"}, app.deployed)
}

func TestApp_Help(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"no arguments", nil, "Usage: deployer <command>"},
		{"long help", []string{"--help"}, "Ships builds"},
		{"short help", []string{"-h"}, "Commands:"},
		{"command help", []string{"deploy", "-h"}, "Usage: deployer deploy [arguments] <env>"},
		{"nested command help", []string{"status", "history", "--help"}, "Usage: deployer status history"},
		{"routing command without callback", []string{"status"}, "Usage: deployer status <command>"},
		{"version", []string{"--version"}, "deployer version 1.0.0"},
		{"short version", []string{"-v"}, "version 1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			require.NoError(t, app.Execute(tt.args))
			assert.Contains(t, app.stdout.String(), tt.contains)
			assert.Empty(t, app.stderr.String())
			assert.Empty(t, app.deployed)
		})
	}
}

func TestApp_HelpShadowedByArgument(t *testing.T) {
	var gotHelp bool
	app := newTestApp(t, WithAppCommand(NewCommand("doc",
		WithArgument(NewFlag("help", WithShortFlag("h"))),
		WithCallback(func(ctx *Context) error {
			gotHelp = ctx.IsFlagPresent("help")
			return nil
		}))))

	require.NoError(t, app.Execute([]string{"doc", "-h"}))
	assert.True(t, gotHelp)
	assert.Empty(t, app.stdout.String())
}

func TestApp_VersionRequiresVersion(t *testing.T) {
	app := newTestApp(t, WithVersion(""))
	err := app.Execute([]string{"--version"})
	assert.ErrorIs(t, err, errs.ErrUnknownArgument)
}

func TestApp_ParseError(t *testing.T) {
	app := newTestApp(t)

	err := app.Execute([]string{"deploy", "--nope"})
	assert.ErrorIs(t, err, errs.ErrMalformedCommand)
	assert.Contains(t, app.stderr.String(), "unknown argument '--nope'")
	assert.Contains(t, app.stderr.String(), "Use 'deployer deploy -h' for more information")
	assert.Empty(t, app.deployed)

	app.stderr.Reset()
	assert.Equal(t, 1, app.Run([]string{"launch"}))
	assert.Contains(t, app.stderr.String(), "unknown subcommand 'launch'")
	assert.Contains(t, app.stderr.String(), "Use 'deployer -h'")

	assert.Equal(t, 1, app.RunString(`deploy "open`))
	assert.ErrorIs(t, app.ExecuteString(`deploy "open`), errs.ErrMalformedCommand)
}

func TestApp_CallbackError(t *testing.T) {
	var logs bytes.Buffer
	app := newTestApp(t, WithAppLogger(log.New(&logs)))

	err := app.Execute([]string{"deploy", "broken"})
	assert.EqualError(t, err, "deployment failed")
	assert.Empty(t, app.stderr.String(), "callback errors are left to the caller")
	assert.Contains(t, logs.String(), "command failed")
	assert.Equal(t, 1, app.Run([]string{"deploy", "broken"}))
}

func TestApp_RootCallback(t *testing.T) {
	var called int
	app := newTestApp(t,
		WithAppArgument(NewOption("config", String)),
		WithAppCallback(func(ctx *Context) error {
			called++
			return nil
		}))

	require.NoError(t, app.Execute(nil))
	require.NoError(t, app.Execute([]string{"--config", "x.toml"}))
	assert.Equal(t, 2, called)
	assert.Empty(t, app.stdout.String())
}

func TestApp_ListDelimiters(t *testing.T) {
	var tags []string
	app := newTestApp(t,
		WithAppListDelimiters(";"),
		WithAppCommand(NewCommand("tag",
			WithArgument(NewOption("name", String, SetRepeatable(true))),
			WithCallback(func(ctx *Context) error {
				tags, _, _ = Values[string](ctx, "name")
				return nil
			}))))

	require.NoError(t, app.Execute([]string{"tag", "--name", "a;b,c"}))
	assert.Equal(t, []string{"a", "b,c"}, tags)
}

func TestApp_Language(t *testing.T) {
	t.Cleanup(func() { errs.UpdateMessageProvider(nil) })

	app := newTestApp(t, WithLanguage("de"))
	assert.Equal(t, "de", app.Config().Language)

	err := app.Execute([]string{"deploy"})
	assert.ErrorIs(t, err, errs.ErrRequiredArgument)
	assert.Contains(t, err.Error(), "erforderliches Argument 'env' fehlt")

	require.NoError(t, app.Execute([]string{"-h"}))
	assert.Contains(t, app.stdout.String(), "Verwendung:")

	_, err = NewApp("x", WithLanguage("not a language tag!"))
	assert.Error(t, err)
}

func TestNewAppFromConfig(t *testing.T) {
	t.Cleanup(func() { errs.UpdateMessageProvider(nil) })

	var out bytes.Buffer
	app, err := NewAppFromConfig(AppConfig{
		Name:        "tool",
		Title:       "Tool",
		Description: "Does things",
		Version:     "2.0",
		Language:    "en",
	}, WithOutput(&out, nil))
	require.NoError(t, err)
	assert.Equal(t, "Does things", app.Tree().Root().Description)
	assert.NotNil(t, app.Parser())

	require.NoError(t, app.Execute([]string{"--version"}))
	assert.Equal(t, "Tool version 2.0\n", out.String())

	_, err = NewAppFromConfig(AppConfig{})
	assert.ErrorIs(t, err, errs.ErrEmptyName)

	_, err = NewApp("tool", WithAppCommand(NewCommand("")))
	assert.ErrorIs(t, err, errs.ErrEmptyName)
}

type stubRenderer struct {
	calls []string
}

func (r *stubRenderer) AppUsage(io.Writer, AppConfig, *CommandTree) error {
	r.calls = append(r.calls, "app")
	return nil
}

func (r *stubRenderer) CommandUsage(_ io.Writer, cmd *Command) error {
	r.calls = append(r.calls, "command:"+cmd.Name)
	return nil
}

func (r *stubRenderer) Version(io.Writer, AppConfig) error {
	r.calls = append(r.calls, "version")
	return nil
}

func TestApp_WithRenderer(t *testing.T) {
	rr := &stubRenderer{}
	app := newTestApp(t, WithRenderer(rr))
	require.NoError(t, app.Execute(nil))
	require.NoError(t, app.Execute([]string{"deploy", "--help"}))
	require.NoError(t, app.Execute([]string{"-v"}))
	assert.Equal(t, []string{"app", "command:deploy", "version"}, rr.calls)
}
