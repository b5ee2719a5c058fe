package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "anilog",
		Short: base.Wrap80("Track anime and manga progress, news, and release reminders locally."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addLog(topLevel)
	addMove(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addRemind(topLevel)
	addNews(topLevel)
	addNotify(topLevel)
	addLayout(topLevel)
	addBackup(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}
