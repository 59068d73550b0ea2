package chaincli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/i18n"
	"github.com/napalu/chaincli/internal/messages"
	"github.com/napalu/chaincli/parse"
)

const (
	helpName     = "help"
	helpShort    = "h"
	versionName  = "version"
	versionShort = "v"
)

// App ties a CommandTree, a Parser and a Renderer together into an executable command-line application. It adds the
// built-in help and version switches and dispatches the matched command's callback.
type App struct {
	config   AppConfig
	tree     *CommandTree
	parser   *Parser
	renderer Renderer
	logger   *log.Logger
	bundle   *i18n.Bundle
	stdout   io.Writer
	stderr   io.Writer
}

// NewApp creates an App whose root command is named name. The caller should always test for error on return because
// App will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	app, err := NewApp("deployer",
//		WithVersion("1.4.0"),
//		WithAppCommand(NewCommand("deploy",
//			WithCallback(deploy),
//			WithArguments(
//				NewPositional("env", String, SetRequired(true)),
//				NewFlag("force", WithShortFlag("f"))))))
//	os.Exit(app.Run(os.Args[1:]))
func NewApp(name string, configs ...ConfigureAppFunc) (*App, error) {
	return NewAppFromConfig(AppConfig{Name: name}, configs...)
}

// NewAppFromConfig creates an App from cfg, typically obtained with LoadAppConfig
func NewAppFromConfig(cfg AppConfig, configs ...ConfigureAppFunc) (*App, error) {
	tree, err := NewCommandTree(cfg.Name, WithCommandDescription(cfg.Description))
	if err != nil {
		return nil, err
	}
	bundle, err := i18n.NewBundle()
	if err != nil {
		return nil, err
	}

	a := &App{
		config: cfg,
		tree:   tree,
		logger: log.New(io.Discard),
		bundle: bundle,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	if cfg.Language != "" {
		if err = a.setLanguage(cfg.Language); err != nil {
			return nil, err
		}
	}

	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return nil, err
		}
	}

	if a.renderer == nil {
		a.renderer = NewRenderer(a.bundle)
	}
	a.parser, err = NewParser(tree,
		WithListDelimiters(a.listDelimiters()),
		WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Config returns the application settings
func (a *App) Config() AppConfig {
	return a.config
}

// Tree returns the command tree of the application
func (a *App) Tree() *CommandTree {
	return a.tree
}

// Parser returns the parser used by Execute
func (a *App) Parser() *Parser {
	return a.parser
}

// WithCommand registers cmd below the command addressed by parentPath. It fails once the App has run.
func (a *App) WithCommand(cmd *Command, parentPath ...string) error {
	return a.tree.Insert(cmd, parentPath...)
}

// Execute freezes the command tree and runs the application against args (without the executable name). Help and
// version requests are answered on stdout. Parse errors are printed to stderr with a hint and returned; callback
// errors are returned unchanged.
func (a *App) Execute(args []string) error {
	a.tree.Freeze()
	root := a.tree.Root()

	if len(args) == 0 && root.Callback == nil {
		return a.renderer.AppUsage(a.stdout, a.config, a.tree)
	}

	cmd, rest := a.tree.Resolve(args)
	if len(rest) == 1 {
		switch {
		case isBuiltin(cmd, rest[0], helpName, helpShort):
			return a.usage(cmd)
		case cmd.IsRoot() && a.config.Version != "" && isBuiltin(cmd, rest[0], versionName, versionShort):
			return a.renderer.Version(a.stdout, a.config)
		}
	}

	ctx, err := a.parser.Parse(args)
	if err != nil {
		a.logger.Error("invalid command line", "command", cmd.PathString(), "err", err)
		a.printError(err)
		return err
	}

	if cmd.Callback == nil {
		if len(rest) == 0 && !cmd.IsRoot() {
			return a.usage(cmd)
		}
		return nil
	}

	a.logger.Debug("running command", "command", cmd.PathString())
	if err = cmd.Callback(ctx); err != nil {
		a.logger.Error("command failed", "command", cmd.PathString(), "err", err)
		return err
	}

	return nil
}

// ExecuteString splits s with shell quoting rules and executes the result
func (a *App) ExecuteString(s string) error {
	args, err := parse.Split(s)
	if err != nil {
		pe := &ParseError{Input: s, err: errs.ErrMalformedCommand.Wrap(err)}
		a.printError(pe)
		return pe
	}
	return a.Execute(args)
}

// Run executes args and returns the process exit code: 0 on success, 1 on any error
func (a *App) Run(args []string) int {
	return exitCode(a.Execute(args))
}

// RunString executes s and returns the process exit code
func (a *App) RunString(s string) int {
	return exitCode(a.ExecuteString(s))
}

func (a *App) usage(cmd *Command) error {
	if cmd.IsRoot() {
		return a.renderer.AppUsage(a.stdout, a.config, a.tree)
	}
	return a.renderer.CommandUsage(a.stdout, cmd)
}

func (a *App) printError(err error) {
	hint := a.tree.Root().Name
	var pe *ParseError
	if errors.As(err, &pe) && len(pe.Command) > 0 {
		for _, name := range pe.Command {
			hint += " " + name
		}
	}
	_, _ = fmt.Fprintf(a.stderr, "%s\n%s\n", err, a.bundle.T(messages.MsgHelpHintKey, hint))
}

func (a *App) listDelimiters() string {
	if a.config.ListDelimiters == "" {
		return string(',')
	}
	return a.config.ListDelimiters
}

// isBuiltin reports whether token requests a built-in switch which cmd does not shadow with its own argument
func isBuiltin(cmd *Command, token, long, short string) bool {
	switch token {
	case longPrefix + long:
		_, taken := cmd.namedArgument(long, false)
		return !taken
	case shortPrefix + short:
		return !cmd.hasShort(short)
	}
	return false
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
