package options

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/media"
)

// StatusOptions
type StatusOptions struct {
	StatusString string
	All          bool
}

func AddStatusArgs(cmd *cobra.Command, o *StatusOptions) {
	cmd.Flags().StringVarP(&o.StatusString, "status", "s", "",
		"Status bucket: "+statusList()+".")
}

func AddAllStatusesArg(cmd *cobra.Command, o *StatusOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Include empty buckets.")
}

func (o *StatusOptions) GetStatus() (media.Status, error) {
	if o.StatusString == "" {
		return "", nil
	}
	return media.ParseStatus(o.StatusString)
}

func statusList() string {
	all := media.AllStatuses()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// StatusCompletions lists buckets matching the prefix for shell completion.
func StatusCompletions(toComplete string) []string {
	out := make([]string, 0)
	for _, s := range media.AllStatuses() {
		if strings.HasPrefix(string(s), toComplete) {
			out = append(out, string(s))
		}
	}
	return out
}
