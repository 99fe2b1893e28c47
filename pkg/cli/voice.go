package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/usecase/note"
	"github.com/urfave/cli/v3"
)

func voiceCommand() *cli.Command {
	var (
		cfg       config
		title     string
		audioPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Aliases:     []string{"t"},
			Usage:       "Note title",
			Destination: &title,
		},
		&cli.StringFlag{
			Name:        "audio",
			Aliases:     []string{"a"},
			Usage:       "Path to the recorded audio file",
			Destination: &audioPath,
			Required:    true,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, aiFlags(&cfg)...)

	return &cli.Command{
		Name:  "voice",
		Usage: "Create a note by transcribing a recording",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx, c)
			if err != nil {
				return err
			}

			audio, err := os.ReadFile(audioPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read audio file", goerr.Value("path", audioPath))
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			ai, err := cfg.newAI(ctx)
			if err != nil {
				return err
			}
			if ai == nil {
				return goerr.New("voice notes need an AI backend for transcription")
			}

			uc := note.New(repo, note.WithAI(ai))

			n, err := uc.AddVoice(ctx, title, audio, audioPath)
			if err != nil {
				return goerr.Wrap(err, "failed to create voice note")
			}

			fmt.Fprintf(c.Root().Writer, "Voice note created: %s\n", n.ID)
			return nil
		},
	}
}
