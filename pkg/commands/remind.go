package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/media"
	"github.com/3mero/anilog/pkg/runner/remind"
)

const layoutDateTime = "2006-01-02 15:04"

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage release reminders",
		Example: `
anilog remind add "New episode" --at "2026-01-05 19:30" --on 1,5
anilog remind upcoming
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemindAdd(cmd)
	addRemindList(cmd, "list", remind.ActionList, "List reminders")
	addRemindList(cmd, "upcoming", remind.ActionUpcoming, "List reminders by next occurrence")
	addRemindList(cmd, "week", remind.ActionWeek, "Show the weekly reminder schedule")
	addRemindRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addRemindAdd(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	var at string
	var days []int
	var mediaID int64
	var kindString string
	var notes string
	var title string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a one-time or weekly recurring reminder",
		Example: `
anilog remind add "Frieren simulcast" --at "2026-01-09 19:30" --on 5 --media 52991
anilog remind add "Volume release" --at "2026-03-01 10:00"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a reminder title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.ParseInLocation(layoutDateTime, at, time.Local)
			if err != nil {
				return oo.HandleError(errors.New(`--at must look like "2026-01-05 19:30"`))
			}
			kind := media.KindAnime
			if kindString != "" {
				if kind, err = media.ParseKind(kindString); err != nil {
					return oo.HandleError(err)
				}
			}
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := remind.Remind{
				Action:  remind.ActionAdd,
				Title:   title,
				MediaID: mediaID,
				Kind:    kind,
				Start:   media.Timestamp{Time: start},
				Days:    days,
				Notes:   notes,
				Store:   s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&at, "at", "",
		`Anchor date and time, example: --at "2026-01-05 19:30".`)
	cmd.Flags().IntSliceVar(&days, "on", nil,
		"Weekdays to repeat on, 0=Sunday..6=Saturday; omit for one-time.")
	cmd.Flags().Int64Var(&mediaID, "media", 0, "Catalog id the reminder is about.")
	cmd.Flags().StringVar(&kindString, "kind", "", "Media kind: anime or manga.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddOutputArg(cmd, oo)
	_ = cmd.MarkFlagRequired("at")

	topLevel.AddCommand(cmd)
}

func addRemindList(topLevel *cobra.Command, use string, action remind.Action, short string) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := remind.Remind{Action: action, Store: s}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addRemindRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := remind.Remind{Action: remind.ActionRemove, ID: args[0], Store: s}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
