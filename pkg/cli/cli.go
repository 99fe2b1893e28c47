package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "kiroku",
		Usage: "Personal note taking with cloud sync and AI enrichment",
		Commands: []*cli.Command{
			newCommand(),
			voiceCommand(),
			listCommand(),
			showCommand(),
			editCommand(),
			deleteCommand(),
			searchCommand(),
			pushCommand(),
			pullCommand(),
			syncCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
