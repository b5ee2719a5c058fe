package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var id int64

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Stop tracking a title",
		Example: `
anilog remove 52991
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a catalog id")
			}
			var err error
			if id, err = strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("catalog id must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := remove.Remove{
				ID:     id,
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

func addClear(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var status media.Status

	cmd := &cobra.Command{
		Use:   "clear [status]",
		Short: "Empty one status bucket",
		Example: `
anilog clear completed
anilog clear plan-to-watch
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a status bucket")
			}
			var err error
			status, err = media.ParseStatus(strings.Join(args, " "))
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := remove.Remove{
				Status: status,
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
