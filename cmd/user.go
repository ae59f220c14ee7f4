package cmd

import (
	"context"
	"time"

	"hnfetch/internal/render"

	"github.com/spf13/cobra"
)

// userCmd fetches a user profile.
var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Fetch a user profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		cfg := GetConfig()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HackerNews.Timeout+5*time.Second)
		defer cancel()

		u, err := newClient(cfg).User(ctx, args[0])
		if err != nil {
			return err
		}
		return render.User(cmd.OutOrStdout(), f, u)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
}
