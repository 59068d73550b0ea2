package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/napalu/chaincli"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "chaincli-demo"})
	if os.Getenv("CHAINCLI_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := chaincli.AppConfig{
		Name:        "chaincli-demo",
		Title:       "Deployment demo",
		Description: "Ships builds to environments",
		Version:     "0.1.0",
	}
	if path := os.Getenv("CHAINCLI_CONFIG"); path != "" {
		loaded, err := chaincli.LoadAppConfig(path)
		if err != nil {
			logger.Fatal("cannot load configuration", "path", path, "err", err)
		}
		if loaded.Name == "" {
			loaded.Name = cfg.Name
		}
		cfg = loaded
	}

	app, err := chaincli.NewAppFromConfig(cfg,
		chaincli.WithAppLogger(logger),
		chaincli.WithAppCommand(deployCommand()),
		chaincli.WithAppCommand(statusCommand()))
	if err != nil {
		logger.Fatal("invalid command definition", "err", err)
	}

	os.Exit(app.Run(os.Args[1:]))
}

func deployCommand() *chaincli.Command {
	return chaincli.NewCommand("deploy",
		chaincli.WithCommandDescription("Deploy a build to an environment"),
		chaincli.WithArguments(
			chaincli.NewPositional("env", chaincli.Enum("dev", "staging", "prod"),
				chaincli.SetRequired(true),
				chaincli.WithDescription("Target environment")),
			chaincli.NewFlag("force", chaincli.WithShortFlag("f"),
				chaincli.WithDescription("Skip the confirmation")),
			chaincli.NewOption("tag", chaincli.String, chaincli.WithShortFlag("t"),
				chaincli.SetRepeatable(true),
				chaincli.WithDescription("Tags attached to the release")),
			chaincli.NewOption("timeout", chaincli.Duration, chaincli.WithDefaultValue("5m")),
			chaincli.NewOption("build", chaincli.UUID, chaincli.WithDescription("Build to deploy")),
			chaincli.NewFlag("latest", chaincli.WithDescription("Deploy the latest build")),
		),
		chaincli.WithExclusiveGroup("source", "build", "latest"),
		chaincli.WithCallback(func(ctx *chaincli.Context) error {
			env, _, _ := ctx.GetString("env")
			timeout, _, _ := ctx.GetDuration("timeout")
			tags, _, err := chaincli.Values[string](ctx, "tag")
			if err != nil {
				return err
			}
			fmt.Printf("deploying to %s (force=%t, timeout=%s, tags=%s)\n",
				env, ctx.IsFlagPresent("force"), timeout, strings.Join(tags, ","))
			return nil
		}))
}

func statusCommand() *chaincli.Command {
	return chaincli.NewCommand("status",
		chaincli.WithCommandDescription("Inspect deployments"),
		chaincli.WithSubcommands(
			chaincli.NewCommand("history",
				chaincli.WithCommandDescription("List past deployments"),
				chaincli.WithArguments(
					chaincli.NewOption("since", chaincli.Time, chaincli.WithShortFlag("s")),
					chaincli.NewOption("limit", chaincli.Int, chaincli.WithDefaultValue("10"))),
				chaincli.WithCallback(func(ctx *chaincli.Context) error {
					limit, _, _ := ctx.GetInt("limit")
					since, ok, _ := chaincli.Value[time.Time](ctx, "since")
					if ok {
						fmt.Printf("last %d deployments since %s\n", limit, since.Format(time.RFC3339))
						return nil
					}
					fmt.Printf("last %d deployments\n", limit)
					return nil
				}))))
}
