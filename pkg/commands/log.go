package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	logrunner "github.com/3mero/anilog/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var id int64
	var amount int
	var absolute bool

	cmd := &cobra.Command{
		Use:   "log [id] [amount]",
		Short: "Log watched episodes or read chapters",
		Long: "Log progress for a tracked title. The amount is a delta " +
			"(+2, -1, bare 3) or an absolute value with = (=12). Progress " +
			"is clamped to the known total, and crossing it moves the " +
			"title to its completed bucket.",
		Example: `
anilog log 52991 +1
anilog log 52991 =12
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a catalog id and an amount")
			}
			var err error
			if id, err = strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("catalog id must be a number")
			}
			raw := args[1]
			if strings.HasPrefix(raw, "=") {
				absolute = true
				raw = raw[1:]
			}
			if amount, err = strconv.Atoi(raw); err != nil {
				return errors.New("amount must look like +2, -1, 3, or =12")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			r := logrunner.Log{
				ID:       id,
				Amount:   amount,
				Absolute: absolute,
				ShowID:   io.ShowID,
				Store:    s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
