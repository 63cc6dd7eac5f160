package main

import (
	"fmt"
	"io"
	"os"

	"rickmorty/catalog/internal/config"
	"rickmorty/catalog/internal/container"
	"rickmorty/catalog/internal/render"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:   "browse",
		Usage:  "Open the interactive character browser (default)",
		Action: browseAction,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version information",
		Action: versionAction,
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Load every character page and print the ones matching --search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "Case-insensitive name filter",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: table, json, yaml (default: table on a terminal, json otherwise)",
			},
		},
		Action: listAction,
	}
}

// setup loads configuration, configures logging and builds the container.
// logOut receives log lines when log.file is not set. The returned func
// closes the container and the log file and must be called once the command ends.
func setup(c *cli.Context, logOut io.Writer) (*container.Container, func(), error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("Failed to load configuration: %v", err), 1)
	}

	levelName := cfg.Log.Level
	if override := c.String("log-level"); override != "" {
		levelName = override
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("Invalid log level %q", levelName), 1)
	}
	log.SetLevel(level)

	out, closeLog, err := openLogOutput(cfg.Log.File, logOut)
	if err != nil {
		return nil, nil, cli.Exit(fmt.Sprintf("Failed to open log file: %v", err), 1)
	}
	log.SetOutput(out)

	app, err := container.New(c.Context, cfg)
	if err != nil {
		log.SetOutput(logOut)
		_ = closeLog()
		return nil, nil, cli.Exit(fmt.Sprintf("Failed to initialize container: %v", err), 1)
	}

	return app, func() {
		if err := app.Close(); err != nil {
			log.Warnf("Failed to close container: %v", err)
		}
		log.SetOutput(logOut)
		if err := closeLog(); err != nil {
			log.Warnf("Failed to close log file: %v", err)
		}
	}, nil
}

// openLogOutput opens path for appending, or returns fallback when path is empty.
func openLogOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func browseAction(c *cli.Context) error {
	// The browser owns the terminal; logs go to log.file or nowhere.
	app, done, err := setup(c, io.Discard)
	if err != nil {
		return err
	}
	defer done()

	return app.Browse(c.Context)
}

func listAction(c *cli.Context) error {
	format, err := render.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if format == "" {
		format = render.DefaultFormat(os.Stdout)
	}

	app, done, err := setup(c, os.Stderr)
	if err != nil {
		return err
	}
	defer done()

	matches, report, err := app.Service.Search(c.Context, c.String("search"))
	if err != nil {
		return err
	}

	if msg, failed := app.Catalog.ErrorMessage(); failed {
		log.Warnf("⚠️ %s (stopped at page %d, showing %d characters)", msg, report.FailedPage, report.Characters)
	}

	return render.NewRenderer(format, os.Stdout).Render(render.Rows(matches, app.Translator))
}

func versionAction(c *cli.Context) error {
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, c.App.Version)
	return err
}
