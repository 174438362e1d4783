package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"nbanews/internal/api"
	"nbanews/internal/config"
	"nbanews/internal/scraper"
	"nbanews/internal/tui"
	"nbanews/internal/version"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	runStories := func(ctx context.Context, c *cli.Command) error {
		return tui.Run(ctx, tui.Options{LogFile: c.String("log-file")}, config.AppConfigLoader())
	}

	return &cli.Command{
		Name:  "nbanews",
		Usage: "NBA news aggregator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-file", Usage: "Path to the diagnostic log (default from config)"},
		},
		Action: runStories,
		Commands: []*cli.Command{
			{
				Name:   "stories",
				Usage:  "Show the top stories from http://localhost:8080/top",
				Action: runStories,
			},
			{
				Name:  "serve",
				Usage: "Run the top stories API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Usage: "Listen address (default from config: 127.0.0.1:8080)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					appCfg, err := config.LoadAppConfig()
					if err != nil {
						return fmt.Errorf("failed to load config: %w", err)
					}
					addr := appCfg.ServerAddr
					if v := strings.TrimSpace(c.String("addr")); v != "" {
						addr = v
					}

					logger := log.New(os.Stdout, "[nbanews] ", log.LstdFlags)
					agg := scraper.NewAggregator(scraper.New(appCfg.Scraper, logger), scraper.Sites())

					ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
					defer stop()
					return api.Serve(ctx, addr, api.NewRouter(agg, logger), logger)
				},
			},
			{
				Name:  "sources",
				Usage: "List the supported news sources",
				Action: func(ctx context.Context, c *cli.Command) error {
					for _, s := range scraper.Sites() {
						fmt.Fprintf(c.Root().Writer, "%-6s %s\n", s.Name, s.URL)
					}
					return nil
				},
			},
			{
				Name:  "config",
				Usage: "Manage the configuration file",
				Commands: []*cli.Command{
					{
						Name:  "init",
						Usage: "Write the default configuration to ~/.config/nbanews/config.yaml",
						Action: func(ctx context.Context, c *cli.Command) error {
							path, err := config.DefaultConfigPath()
							if err != nil {
								return err
							}
							if err := config.WriteConfig(path, config.Default()); err != nil {
								return err
							}
							fmt.Fprintf(c.Root().Writer, "configuration written to %s\n", path)
							return nil
						},
					},
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Fprintln(c.Root().Writer, version.GetVersion())
					return nil
				},
			},
		},
	}
}
