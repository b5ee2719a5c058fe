package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/runner/layout"
)

func addLayout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Arrange the home screen sections",
		Example: `
anilog layout hide seasonal
anilog layout rename favorites "My Picks"
anilog layout move news 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(layout.Layout{Action: layout.ActionList})
		},
	}

	addLayoutToggle(cmd, "show", layout.ActionShow, "Unhide a section")
	addLayoutToggle(cmd, "hide", layout.ActionHide, "Hide a section")
	addLayoutRename(cmd)
	addLayoutMove(cmd)

	topLevel.AddCommand(cmd)
}

func addLayoutToggle(topLevel *cobra.Command, use string, action layout.Action, short string) {
	cmd := &cobra.Command{
		Use:   use + " [section]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(layout.Layout{Action: action, ID: args[0]})
		},
	}
	topLevel.AddCommand(cmd)
}

func addLayoutRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename [section] [title]",
		Short: "Retitle a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(layout.Layout{Action: layout.ActionRename, ID: args[0], Title: args[1]})
		},
	}
	topLevel.AddCommand(cmd)
}

func addLayoutMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move [section] [index]",
		Short: "Reorder a section, 0 is the top",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			return runLayout(layout.Layout{Action: layout.ActionMove, ID: args[0], Index: index})
		},
	}
	topLevel.AddCommand(cmd)
}

func runLayout(n layout.Layout) error {
	oo := &options.OutputOptions{}
	s, err := loadStore()
	if err != nil {
		return oo.HandleError(err)
	}
	defer func() { _ = s.Close() }()
	n.Store = s
	return oo.HandleError(n.Do(context.Background()))
}
