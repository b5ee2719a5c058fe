package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.StatusOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var total, progress int
	var image string

	var kind media.Kind
	var id int64
	var title string

	cmd := &cobra.Command{
		Use:   "add [kind] [id] [title]",
		Short: "Track a title in one of the status buckets",
		Example: `
anilog add anime 52991 Frieren --total 28
anilog add manga 2 Berserk --status plan-to-read
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a kind and a catalog id")
			}
			var err error
			if kind, err = media.ParseKind(args[0]); err != nil {
				return err
			}
			if id, err = strconv.ParseInt(args[1], 10, 64); err != nil {
				return errors.New("catalog id must be a number")
			}
			title = strings.Join(args[2:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := so.GetStatus()
			if err != nil {
				return oo.HandleError(err)
			}
			if status == "" {
				status = media.PlannedStatus(kind)
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := add.Add{
				Kind:     kind,
				ID:       id,
				Title:    title,
				Total:    total,
				Image:    image,
				Status:   status,
				Progress: progress,
				ShowID:   io.ShowID,
				Store:    s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "Total episodes or chapters, when known.")
	cmd.Flags().IntVar(&progress, "progress", 0, "Starting progress.")
	cmd.Flags().StringVar(&image, "image", "", "Cover image URL.")
	options.AddStatusArgs(cmd, so)
	registerStatusCompletion(cmd)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func registerStatusCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("status", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.StatusCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}
