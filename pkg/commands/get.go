package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	so := &options.StatusOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	validArgs := make([]string, 0)
	for _, s := range media.AllStatuses() {
		validArgs = append(validArgs, string(s))
	}

	cmd := &cobra.Command{
		Use:   "get [status]",
		Short: "List a status bucket, or every non-empty one",
		Example: `
anilog get
anilog get watching
anilog get plan-to-read --id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			so.StatusString = strings.Join(args, " ")
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := so.GetStatus()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := get.Get{
				ShowID: io.ShowID,
				Status: status,
				All:    so.All,
				Store:  s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddAllStatusesArg(cmd, so)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
