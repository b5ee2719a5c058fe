package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import the whole profile as JSON",
		Example: `
anilog backup export anilog.json
anilog backup import anilog.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addBackupExport(cmd)
	addBackupImport(cmd)

	topLevel.AddCommand(cmd)
}

func addBackupExport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the profile backup document, to stdout when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			n := backup.Export{Store: s}
			if len(args) == 1 {
				n.File = args[0]
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addBackupImport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the profile from a backup document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			n := backup.Import{File: args[0], Store: s}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
