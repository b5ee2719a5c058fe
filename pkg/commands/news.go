package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/3mero/anilog/pkg/commands/options"
	"github.com/3mero/anilog/pkg/profile"
	"github.com/3mero/anilog/pkg/runner/news"
)

func addNews(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manage pinned and favorite news articles",
		Example: `
anilog news pin article-101 "Season 2 announced" --url https://example.com/s2
anilog news favorite article-101 "Season 2 announced"
anilog news list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNewsList(cmd)
	addNewsRef(cmd, "pin", news.ActionPin, "Pin an article and raise a news notification")
	addNewsRef(cmd, "favorite", news.ActionFavorite, "Add an article to favorites")
	addNewsDrop(cmd, "unpin", news.ActionUnpin, "Remove an article from the pinned list")
	addNewsDrop(cmd, "unfavorite", news.ActionUnfavorite, "Remove an article from favorites")

	topLevel.AddCommand(cmd)
}

func addNewsList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pinned and favorite articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			n := news.News{Action: news.ActionList, Store: s}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addNewsRef(topLevel *cobra.Command, use string, action news.Action, short string) {
	oo := &options.OutputOptions{}

	var url string
	var image string

	cmd := &cobra.Command{
		Use:   use + " [id] [title]",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			n := news.News{
				Action: action,
				Ref: profile.NewsRef{
					ID:    args[0],
					Title: args[1],
					URL:   url,
					Image: image,
				},
				Store: s,
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Article link.")
	cmd.Flags().StringVar(&image, "image", "", "Article image link.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addNewsDrop(topLevel *cobra.Command, use string, action news.Action, short string) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return oo.HandleError(err)
			}
			defer func() { _ = s.Close() }()
			n := news.News{
				Action: action,
				Ref:    profile.NewsRef{ID: args[0]},
				Store:  s,
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
