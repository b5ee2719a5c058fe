package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var id int64
	var to media.Status

	cmd := &cobra.Command{
		Use:   "move [id] [status]",
		Short: "Move a tracked title to another status bucket",
		Example: `
anilog move 52991 watching
anilog move 2 plan-to-read
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a catalog id and a destination status")
			}
			var err error
			if id, err = strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("catalog id must be a number")
			}
			to, err = media.ParseStatus(strings.Join(args[1:], " "))
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := move.Move{
				ID:     id,
				To:     to,
				ShowID: io.ShowID,
				Store:  s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
