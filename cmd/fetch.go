package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webcmstools/webcms-cli/filter"
	"github.com/webcmstools/webcms-cli/webcms"
)

var (
	// content flags
	contentName     string
	contentPrefix   string
	contentID       int
	contentLimit    int
	contentStart    int
	contentUploaded bool
	contentType     string

	// events flags
	eventTimeline string
	eventType     string
	eventLimit    int
	eventStart    int
	eventID       int

	// media flags
	mediaType  string
	mediaLimit int
	mediaStart int
	mediaID    int

	// menu flags
	menuLevel  int
	menuParent int
)

var contentCmd = &cobra.Command{
	Use:     "content",
	Short:   "Fetch web content entries",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := webcms.ContentFilter{
			Name:        contentName,
			Prefix:      contentPrefix,
			ID:          contentID,
			Limit:       contentLimit,
			Start:       contentStart,
			ContentType: contentType,
		}
		if cmd.Flags().Changed("uploaded") {
			f.HasUploadedFile = &contentUploaded
		}
		return printResult(client.FetchContent(commandContext(cmd), f))
	},
}

var eventsCmd = &cobra.Command{
	Use:     "events",
	Short:   "Fetch event entries",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := webcms.EventFilter{
			Timeline: eventTimeline,
			Type:     eventType,
			Limit:    eventLimit,
			Start:    eventStart,
			ID:       eventID,
		}
		return printResult(client.FetchEvents(commandContext(cmd), f))
	},
}

var mediaCmd = &cobra.Command{
	Use:     "media",
	Short:   "Fetch media gallery entries",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := webcms.MediaGalleryFilter{
			MediaType: mediaType,
			Limit:     mediaLimit,
			Start:     mediaStart,
			ID:        mediaID,
		}
		return printResult(client.FetchMediaGallery(commandContext(cmd), f))
	},
}

var systemCmd = &cobra.Command{
	Use:     "system",
	Short:   "Fetch site system data",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(client.FetchSystemData(commandContext(cmd)))
	},
}

var menuCmd = &cobra.Command{
	Use:     "menu",
	Short:   "Fetch the website menu",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := webcms.MenuFilter{
			MenuLevel: menuLevel,
			ParentID:  menuParent,
		}
		return printResult(client.FetchWebsiteMenu(commandContext(cmd), f))
	},
}

func init() {
	contentCmd.Flags().StringVar(&contentName, "name", "", "filter by content name")
	contentCmd.Flags().StringVar(&contentPrefix, "prefix", "", "filter by name prefix")
	contentCmd.Flags().IntVar(&contentID, "id", 0, "fetch a single entry by id")
	contentCmd.Flags().IntVar(&contentLimit, "limit", 0, "maximum entries to return")
	contentCmd.Flags().IntVar(&contentStart, "start", 0, "pagination offset")
	contentCmd.Flags().BoolVar(&contentUploaded, "uploaded", false, "only entries with an uploaded file")
	contentCmd.Flags().StringVar(&contentType, "content-type", "", "filter by content type")

	eventsCmd.Flags().StringVar(&eventTimeline, "timeline", "", "past or upcoming")
	eventsCmd.Flags().StringVar(&eventType, "type", "", "filter by event type")
	eventsCmd.Flags().IntVar(&eventLimit, "limit", 0, "maximum entries to return")
	eventsCmd.Flags().IntVar(&eventStart, "start", 0, "pagination offset")
	eventsCmd.Flags().IntVar(&eventID, "id", 0, "fetch a single event by id")

	mediaCmd.Flags().StringVar(&mediaType, "media-type", "", "filter by media type")
	mediaCmd.Flags().IntVar(&mediaLimit, "limit", 0, "maximum entries to return")
	mediaCmd.Flags().IntVar(&mediaStart, "start", 0, "pagination offset")
	mediaCmd.Flags().IntVar(&mediaID, "id", 0, "fetch a single gallery by id")

	menuCmd.Flags().IntVar(&menuLevel, "level", 0, "menu depth level")
	menuCmd.Flags().IntVar(&menuParent, "parent", 0, "parent menu item id")

	for _, c := range []*cobra.Command{contentCmd, eventsCmd, mediaCmd, menuCmd} {
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression applied to data items")
	}

	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(menuCmd)
}

// printResult prints a payload to stdout, applying the client-side
// filter expression to list payloads when one was given. API failures
// become command errors.
func printResult(res webcms.Result) error {
	if !res.OK() {
		return fmt.Errorf("%s", res.Message())
	}

	var payload any = res
	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return err
		}
		items := filter.Apply(res.Items(), f)
		logger.Debug().
			Int("matched", len(items)).
			Str("filter", f.String()).
			Msg("Applied client-side filter")
		payload = items
	}

	return printJSON(payload)
}

func printJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	return nil
}
