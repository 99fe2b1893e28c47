package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/usecase/note"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	var (
		cfg   config
		force bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Skip the confirmation prompt",
			Destination: &force,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a note",
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

			if !force {
				fmt.Fprintf(c.Root().Writer, "Delete note %s? [y/N]: ", id)
				scanner := bufio.NewScanner(os.Stdin)
				if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
					fmt.Fprintln(c.Root().Writer, "Canceled")
					return nil
				}
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc := note.New(repo)

			if err := uc.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Note deleted: %s\n", id)
			return nil
		},
	}
}
