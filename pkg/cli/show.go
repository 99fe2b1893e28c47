package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/usecase/note"
	"github.com/m-mizutani/kiroku/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		cfg    config
		topics bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "topics",
			Usage:       "Suggest related topics for the note",
			Destination: &topics,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, aiFlags(&cfg)...)

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a note",
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

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc := note.New(repo)

			n, err := uc.Get(ctx, id)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "ID:      %s\n", n.ID)
			fmt.Fprintf(w, "Title:   %s\n", n.Title)
			fmt.Fprintf(w, "Type:    %s\n", n.Type)
			fmt.Fprintf(w, "Created: %s\n", n.CreatedAt.Format("2006-01-02 15:04:05"))
			if len(n.Tags) > 0 {
				fmt.Fprintf(w, "Tags:    %s\n", strings.Join(n.Tags, ", "))
			}
			if n.AudioRef != "" {
				fmt.Fprintf(w, "Audio:   %s\n", n.AudioRef)
			}
			if n.Summary != "" {
				fmt.Fprintf(w, "Summary: %s\n", n.Summary)
			}
			fmt.Fprintf(w, "\n%s\n", n.Content)

			if topics {
				ai, err := cfg.newAI(ctx)
				if err != nil {
					return err
				}

				// The note is already rendered; a failed suggestion
				// degrades to showing the note without topics
				suggested, err := note.New(repo, note.WithAI(ai)).SuggestTopics(ctx, id)
				if err != nil {
					logging.From(ctx).Warn("topic suggestion failed", "error", err)
				} else {
					fmt.Fprintf(w, "\n%s\n", suggested)
				}
			}

			return nil
		},
	}
}
