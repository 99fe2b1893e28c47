package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/usecase/note"
	"github.com/urfave/cli/v3"
)

func editCommand() *cli.Command {
	var (
		cfg     config
		title   string
		content string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Aliases:     []string{"t"},
			Usage:       "New title",
			Destination: &title,
		},
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "New content",
			Destination: &content,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a note's title or content",
		ArgsUsage: "<note-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx, c)
			if err != nil {
				return err
			}

			if c.Args().Len() != 1 {
				return goerr.New("note ID is required")
			}
			id := model.NoteID(c.Args().First())

			var patch model.NotePatch
			if c.IsSet("title") {
				patch.Title = &title
			}
			if c.IsSet("content") {
				patch.Content = &content
			}
			if patch.Title == nil && patch.Content == nil {
				return goerr.New("nothing to change, pass --title or --content")
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc := note.New(repo)

			n, err := uc.Update(ctx, id, patch)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Note updated: %s\n", n.ID)
			return nil
		},
	}
}
