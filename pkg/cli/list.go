package cli

import (
	"context"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/usecase/note"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)

	return &cli.Command{
		Name:  "list",
		Usage: "List all notes, newest first",
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

			uc := note.New(repo)

			notes, err := uc.List(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list notes")
			}

			renderNotes(c, notes)
			return nil
		},
	}
}

func renderNotes(c *cli.Command, notes []*model.Note) {
	t := table.NewWriter()
	t.SetOutputMirror(c.Root().Writer)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Title", "Type", "Tags", "Created"})

	for _, n := range notes {
		noteType := string(n.Type)
		if n.Type == model.NoteTypeVoice {
			noteType = text.FgHiBlue.Sprintf("%s", noteType)
		}

		t.AppendRow(table.Row{
			n.ID,
			n.Title,
			noteType,
			strings.Join(n.Tags, ", "),
			n.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	t.Render()
}
