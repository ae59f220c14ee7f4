package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hnfetch/hackernews"
	"hnfetch/internal/render"
	"hnfetch/worker"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [list...]",
	Short: "Poll story listings and print items as they appear",
	Long:  "Poll the given listings (default: watch.lists) every watch.interval and print items not seen in the previous poll.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := outputFormat()
		if err != nil {
			return err
		}
		cfg := GetConfig()

		names := args
		if len(names) == 0 {
			names = cfg.Watch.Lists
		}
		lists := make([]hackernews.Listing, 0, len(names))
		seen := map[hackernews.Listing]struct{}{}
		for _, n := range names {
			l, err := hackernews.ParseListing(n)
			if err != nil {
				return err
			}
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			lists = append(lists, l)
		}

		out := cmd.OutOrStdout()
		watcher := &worker.ListingWatcher{
			Client:   newClient(cfg),
			Lists:    lists,
			Interval: cfg.Watch.Interval,
			Count:    cfg.Watch.Count,
			OnItems: func(l hackernews.Listing, items []hackernews.Item) {
				if f == render.Text {
					fmt.Fprintf(out, "== %s ==\n", l.Short())
				}
				if err := render.Items(out, f, items); err != nil {
					slog.Error("watch: render error", "list", l.Short(), "error", err)
				}
			},
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		go func() {
			select {
			case s := <-sigc:
				slog.Info("received signal, shutting down", "signal", s.String())
				cancel()
			case <-ctx.Done():
			}
		}()

		slog.Info("starting listing watcher", "lists", names, "interval", cfg.Watch.Interval, "count", cfg.Watch.Count)
		return worker.NewManager(watcher).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
