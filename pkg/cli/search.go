package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/usecase/note"
	"github.com/urfave/cli/v3"
)

func searchCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)

	return &cli.Command{
		Name:      "search",
		Usage:     "Search notes by title, content or tag",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx, c)
			if err != nil {
				return err
			}

			query := c.Args().First()

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc := note.New(repo)

			notes, err := uc.Search(ctx, query)
			if err != nil {
				return goerr.Wrap(err, "failed to search notes")
			}

			renderNotes(c, notes)
			return nil
		},
	}
}
