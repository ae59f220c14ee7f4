package cmd

import (
	"context"
	"time"

	"hnfetch/hackernews"
	"hnfetch/internal/render"

	"github.com/spf13/cobra"
)

var storiesCount int

// storiesCmd fetches the head of a listing.
var storiesCmd = &cobra.Command{
	Use:       "stories <top|new|best|ask|show|job>",
	Short:     "Fetch the first N items of a story listing",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"top", "new", "best", "ask", "show", "job"},
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		l, err := hackernews.ParseListing(args[0])
		if err != nil {
			return err
		}
		cfg := GetConfig()
		client := newClient(cfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.HackerNews.Timeout+5*time.Second)
		defer cancel()

		fetch := map[hackernews.Listing]func(context.Context, ...int) ([]hackernews.Item, error){
			hackernews.Top:  client.TopStories,
			hackernews.New:  client.NewStories,
			hackernews.Best: client.BestStories,
			hackernews.Ask:  client.AskStories,
			hackernews.Show: client.ShowStories,
			hackernews.Job:  client.JobStories,
		}
		var count []int
		if cmd.Flags().Changed("count") {
			count = append(count, storiesCount)
		}
		items, err := fetch[l](ctx, count...)
		if err != nil {
			return err
		}
		return render.Items(cmd.OutOrStdout(), f, items)
	},
}

func init() {
	storiesCmd.Flags().IntVarP(&storiesCount, "count", "n", 0, "number of items (default: hackernews.default_count)")
	rootCmd.AddCommand(storiesCmd)
}
