package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/model"
	"github.com/m-mizutani/kiroku/pkg/usecase/note"
	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	var (
		cfg       config
		title     string
		content   string
		inputPath string
		noEnrich  bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Aliases:     []string{"t"},
			Usage:       "Note title",
			Sources:     cli.EnvVars("KIROKU_TITLE"),
			Destination: &title,
		},
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "Note content",
			Destination: &content,
		},
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to a text file to use as content",
			Destination: &inputPath,
		},
		&cli.BoolFlag{
			Name:        "no-enrich",
			Usage:       "Skip AI enrichment for this note",
			Destination: &noEnrich,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, aiFlags(&cfg)...)

	return &cli.Command{
		Name:  "new",
		Usage: "Create a new text note",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx, c)
			if err != nil {
				return err
			}

			if inputPath != "" {
				data, err := os.ReadFile(inputPath)
				if err != nil {
					return goerr.Wrap(err, "failed to read input file", goerr.Value("path", inputPath))
				}
				content = string(data)
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			uc := note.New(repo)
			if !noEnrich {
				ai, err := cfg.newAI(ctx)
				if err != nil {
					return err
				}
				if ai != nil {
					uc = note.New(repo, note.WithAI(ai))
				}
			}

			n, err := uc.Add(ctx, model.NoteDraft{
				Title:   title,
				Content: content,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to create note")
			}

			fmt.Fprintf(c.Root().Writer, "Note created: %s\n", n.ID)
			return nil
		},
	}
}
