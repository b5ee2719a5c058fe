package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/notify"
	"github.com/3mero/anilog/pkg/runner/notifications"
)

func addNotify(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "Show and manage the unread notification feed",
		Example: `
anilog notifications
anilog notifications seen 6a1b2c3d
anilog notifications clear news
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotify(cmd, notifications.Notifications{Action: notifications.ActionList})
		},
	}

	addNotifySeen(cmd)
	addNotifyCategory(cmd, "seen-all", notifications.ActionSeenAll,
		"Mark every notification seen, optionally only one category")
	addNotifyCategory(cmd, "clear", notifications.ActionClear,
		"Delete notifications, optionally only one category")

	topLevel.AddCommand(cmd)
}

func addNotifySeen(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seen [id]",
		Short: "Mark a single notification seen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotify(cmd, notifications.Notifications{
				Action: notifications.ActionSeen,
				ID:     args[0],
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addNotifyCategory(topLevel *cobra.Command, use string, action notifications.Action, short string) {
	cmd := &cobra.Command{
		Use:       use + " [category]",
		Short:     short,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(notify.CategoryNews), string(notify.CategoryUpdate), string(notify.CategoryReminder)},
		RunE: func(cmd *cobra.Command, args []string) error {
			category := notify.Category("")
			if len(args) == 1 {
				var err error
				if category, err = parseCategory(args[0]); err != nil {
					return err
				}
			}
			return runNotify(cmd, notifications.Notifications{
				Action:   action,
				Category: category,
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func runNotify(cmd *cobra.Command, n notifications.Notifications) error {
	oo := &options.OutputOptions{}
	s, err := loadStore()
	if err != nil {
		return oo.HandleError(err)
	}
	defer func() { _ = s.Close() }()
	n.Store = s
	n.ShowID = true
	return oo.HandleError(n.Do(context.Background()))
}

func parseCategory(raw string) (notify.Category, error) {
	switch notify.Category(raw) {
	case notify.CategoryNews, notify.CategoryUpdate, notify.CategoryReminder:
		return notify.Category(raw), nil
	}
	return "", fmt.Errorf("unknown notification category %q", raw)
}
