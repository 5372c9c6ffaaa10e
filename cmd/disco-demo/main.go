package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/abyssdigger/disco"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "disco-demo",
		Usage:  "Render sample log lines with a disco config",
		Action: runDemo,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "disco.toml",
				Usage:   "TOML config file, defaults are used if it does not exist",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 10,
				Usage: "Number of goroutines logging at once",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   5,
				Usage:   "Messages per worker",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Override the config level (trace, debug, info, warn, error, off)",
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "disco-demo:", err)
		os.Exit(1)
	}
}

func runDemo(ctx *cli.Context) error {
	cfg, err := disco.LoadConfig(ctx.String("config"))
	if err != nil {
		return err
	}
	if ctx.IsSet("level") {
		level, ok := disco.LevelFromString(ctx.String("level"))
		if !ok {
			return fmt.Errorf("unknown level %q", ctx.String("level"))
		}
		cfg.Level = level
	}
	if err := disco.Install(disco.New(cfg)); err != nil {
		return err
	}

	workers, count := ctx.Int("workers"), ctx.Int("count")
	disco.Info("main", "starting %d workers", workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			client := disco.Installed().NewClient(fmt.Sprintf("worker-%02d", n))
			for j := 0; j < count; j++ {
				switch j % 5 {
				case 0:
					client.LogTrace(fmt.Sprintf("tick %d", j))
				case 1:
					client.LogDebug(fmt.Sprintf("state %d of %d", j, count))
				case 2:
					client.LogInfo("こんにちは, 世界! नमस्ते")
				case 3:
					fmt.Fprintf(client.Lvl(disco.LVL_WARN), "slow step %d\n", j)
				default:
					client.LogErr(errors.New("something failed"))
				}
			}
		}(i)
	}
	wg.Wait()

	slog.Info("done", "workers", workers, disco.TARGET_KEY, "main")
	if err := disco.Install(disco.NewDefault()); errors.Is(err, disco.ErrAlreadyInstalled) {
		disco.Debug("main", "second install refused: %v", err)
	}
	return nil
}
