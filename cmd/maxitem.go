package cmd

import (
	"context"
	"time"

	"hnfetch/internal/render"

	"github.com/spf13/cobra"
)

var maxItemCmd = &cobra.Command{
	Use:   "maxitem",
	Short: "Print the current largest item ID",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		cfg := GetConfig()
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HackerNews.Timeout+5*time.Second)
		defer cancel()

		id, err := newClient(cfg).MaxItem(ctx)
		if err != nil {
			return err
		}
		return render.Value(cmd.OutOrStdout(), f, id)
	},
}

func init() {
	rootCmd.AddCommand(maxItemCmd)
}
