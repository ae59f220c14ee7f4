package cmd

import (
	"context"
	"time"

	"hnfetch/hackernews"
	"hnfetch/internal/render"

	"github.com/spf13/cobra"
)

// itemCmd fetches one or more items by ID.
var itemCmd = &cobra.Command{
	Use:   "item <id> [id...]",
	Short: "Fetch items by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		ids := make([]int, 0, len(args))
		for _, a := range args {
			id, err := hackernews.ParseItemID(a)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		cfg := GetConfig()
		client := newClient(cfg)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.HackerNews.Timeout+5*time.Second)
		defer cancel()

		items, err := client.Items(ctx, ids)
		if err != nil {
			return err
		}
		return render.Items(cmd.OutOrStdout(), f, items)
	},
}

func init() {
	rootCmd.AddCommand(itemCmd)
}
