package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/printers"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the profile for external changes until interrupted",
		Example: `
anilog watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			s, err := loadStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			events, err := s.Watch(ctx)
			if err != nil {
				return err
			}

			f := color.New(color.Faint, color.Italic)
			_, _ = f.Print(" watching for profile changes, ctrl-c to stop\n")

			pp := printers.PrettyPrint{}
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-events:
					if !ok {
						return nil
					}
					fmt.Println("")
					pp.Notifications(ev.Profile.Notifications)
				}
			}
		},
	}

	topLevel.AddCommand(cmd)
}
