package cmd

import (
	"context"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/webcmstools/webcms-cli/webcms"
)

var snapshotLimit int

// snapshotCmd fetches every endpoint and prints one combined document.
// Sections are fetched concurrently; a failed section is kept in the
// output with its failure envelope so partial snapshots stay usable.
var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Short:   "Fetch all endpoints into one combined document",
	PreRunE: initializeApp,
	RunE:    runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&snapshotLimit, "limit", 50, "maximum entries per list section")

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	sections := map[string]func(context.Context) webcms.Result{
		"content": func(ctx context.Context) webcms.Result {
			return client.FetchContent(ctx, webcms.ContentFilter{Limit: snapshotLimit})
		},
		"events": func(ctx context.Context) webcms.Result {
			return client.FetchEvents(ctx, webcms.EventFilter{Limit: snapshotLimit})
		},
		"media_gallery": func(ctx context.Context) webcms.Result {
			return client.FetchMediaGallery(ctx, webcms.MediaGalleryFilter{Limit: snapshotLimit})
		},
		"system_data": func(ctx context.Context) webcms.Result {
			return client.FetchSystemData(ctx)
		},
		"website_menu": func(ctx context.Context) webcms.Result {
			return client.FetchWebsiteMenu(ctx, webcms.MenuFilter{})
		},
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(len(sections))

	// Mutex protects concurrent writes to the combined document
	var mu sync.Mutex
	combined := make(map[string]webcms.Result, len(sections))

	for name, fetch := range sections {
		name, fetch := name, fetch
		g.Go(func() error {
			res := fetch(ctx)
			if !res.OK() {
				logger.Warn().
					Str("section", name).
					Str("reason", res.Message()).
					Msg("Section fetch failed")
			}
			mu.Lock()
			combined[name] = res
			mu.Unlock()
			return nil // keep fetching the other sections
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return printJSON(combined)
}
