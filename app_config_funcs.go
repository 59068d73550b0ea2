package chaincli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/napalu/chaincli/errs"
	"github.com/napalu/chaincli/i18n"
	"golang.org/x/text/language"
)

// WithTitle sets the title shown at the top of the application help
func WithTitle(title string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.config.Title = title
	}
}

// WithAppDescription sets the application description
func WithAppDescription(description string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.config.Description = description
		app.tree.Root().Description = description
	}
}

// WithVersion sets the version printed for -v/--version. The version switches are only available when set.
func WithVersion(version string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.config.Version = version
	}
}

// WithOutput redirects help output to stdout and error output to stderr. A nil writer discards output.
func WithOutput(stdout, stderr io.Writer) ConfigureAppFunc {
	return func(app *App, err *error) {
		if stdout == nil {
			stdout = io.Discard
		}
		if stderr == nil {
			stderr = io.Discard
		}
		app.stdout, app.stderr = stdout, stderr
	}
}

// WithAppLogger sets the logger used by the App and its Parser. Passing nil discards log output.
func WithAppLogger(logger *log.Logger) ConfigureAppFunc {
	return func(app *App, err *error) {
		if logger == nil {
			logger = log.New(io.Discard)
		}
		app.logger = logger
	}
}

// WithRenderer replaces the DefaultRenderer
func WithRenderer(renderer Renderer) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.renderer = renderer
	}
}

// WithAppListDelimiters sets the runes splitting the values of repeatable options
func WithAppListDelimiters(delimiters string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.config.ListDelimiters = delimiters
	}
}

// WithLanguage selects the catalog for help and error messages, e.g. "de". Error messages are rendered through a
// process-wide provider, so the last App configured with a language wins.
func WithLanguage(lang string) ConfigureAppFunc {
	return func(app *App, err *error) {
		*err = app.setLanguage(lang)
	}
}

// WithBundle replaces the message bundle used by the DefaultRenderer, e.g. one extended with
// i18n.Bundle.AddLanguage. Apply it before WithLanguage.
func WithBundle(bundle *i18n.Bundle) ConfigureAppFunc {
	return func(app *App, err *error) {
		if bundle != nil {
			app.bundle = bundle
		}
	}
}

// WithAppCallback sets the callback invoked when no subcommand is matched
func WithAppCallback(callback CommandFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.tree.Root().Callback = callback
	}
}

// WithAppCommand registers cmd below the command addressed by parentPath
func WithAppCommand(cmd *Command, parentPath ...string) ConfigureAppFunc {
	return func(app *App, err *error) {
		*err = app.tree.Insert(cmd, parentPath...)
	}
}

// WithAppArgument declares an argument on the root command
func WithAppArgument(arg *Argument) ConfigureAppFunc {
	return func(app *App, err *error) {
		*err = app.tree.Root().AddArgument(arg)
	}
}

func (a *App) setLanguage(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return err
	}
	a.bundle.SetDefaultLanguage(tag)
	a.config.Language = lang
	errs.UpdateMessageProvider(i18n.NewBundleMessageProvider(a.bundle))
	return nil
}
