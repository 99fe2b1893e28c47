package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	syncuc "github.com/m-mizutani/kiroku/pkg/usecase/sync"
	"github.com/urfave/cli/v3"
)

func pushCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, syncFlags(&cfg)...)

	return &cli.Command{
		Name:  "push",
		Usage: "Upload the local notes snapshot to the cloud drive",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx, c)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc, err := cfg.newSync(ctx, repo)
			if err != nil {
				return err
			}

			sp := newSpinner("Pushing notes...")
			sp.Start()
			err = uc.Push(ctx)
			sp.Stop()
			if err != nil {
				return goerr.Wrap(err, "push failed")
			}

			fmt.Fprintf(c.Root().Writer, "Pushed at %s\n", uc.LastSync().Format(time.RFC3339))
			return nil
		},
	}
}

func pullCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, syncFlags(&cfg)...)

	return &cli.Command{
		Name:  "pull",
		Usage: "Replace the local snapshot with the remote one",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx, c)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc, err := cfg.newSync(ctx, repo)
			if err != nil {
				return err
			}

			sp := newSpinner("Pulling notes...")
			sp.Start()
			notes, err := uc.Pull(ctx)
			sp.Stop()
			if err != nil {
				return goerr.Wrap(err, "pull failed")
			}

			if err := uc.Adopt(ctx, notes); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Pulled %d notes\n", len(notes))
			return nil
		},
	}
}

func syncCommand() *cli.Command {
	var (
		cfg      config
		interval time.Duration
	)

	flags := []cli.Flag{
		&cli.DurationFlag{
			Name:        "interval",
			Aliases:     []string{"i"},
			Usage:       "Interval between periodic pushes",
			Value:       syncuc.DefaultInterval,
			Sources:     cli.EnvVars("KIROKU_SYNC_INTERVAL"),
			Destination: &interval,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, syncFlags(&cfg)...)

	return &cli.Command{
		Name:  "sync",
		Usage: "Push the snapshot periodically until interrupted",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx, c)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc, err := cfg.newSync(ctx, repo)
			if err != nil {
				return err
			}

			// Push once up front so a fresh machine converges immediately
			if err := uc.Push(ctx); err != nil {
				return goerr.Wrap(err, "initial push failed")
			}

			fmt.Fprintf(c.Root().Writer, "Syncing every %s, Ctrl-C to stop\n", interval)
			return uc.Watch(ctx, interval)
		},
	}
}

func newSpinner(message string) *spinner.Spinner {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " " + message
	return sp
}
