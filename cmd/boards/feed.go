package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yuribeats/the-boards/blob"
	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/feed"
	"github.com/yuribeats/the-boards/telemetry"
	"github.com/yuribeats/the-boards/utils"
)

// newFeedCmd creates the 'feed' subcommand.
func newFeedCmd() *cobra.Command {
	var file, format, archive string
	cmd := &cobra.Command{
		Use:   constants.CmdFeed,
		Short: constants.DescFeed,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var res feed.Result
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				res = feed.Parse(string(data))
			} else {
				src, err := feed.NewSource(cfg.Sheet, telemetry.NewHTTPClient(time.Duration(cfg.HTTP.Timeout)))
				if err != nil {
					return err
				}
				if res, err = src.Load(cmd.Context()); err != nil {
					return err
				}
			}

			out, err := encodeFeed(res, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))

			if archive != "" {
				store, err := blob.NewDefaultBlobStore(cmd.Context(), &cfg.Blob)
				if err != nil {
					return err
				}
				data, err := utils.MarshalJSONIndent(res)
				if err != nil {
					return err
				}
				url, err := store.Put(cmd.Context(), data, constants.ContentTypeJSON, archive)
				if err != nil {
					return utils.Errorf("archive feed: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "archived feed to %s\n", url)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Parse a local CSV export instead of fetching the sheet")
	cmd.Flags().StringVarP(&format, "format", "o", constants.OutputJSON, "Output format: json or yaml")
	cmd.Flags().StringVar(&archive, "archive", "", "Also store the feed as JSON in the blob store under this name")
	return cmd
}

func encodeFeed(res feed.Result, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", constants.OutputJSON:
		return utils.MarshalJSONIndent(res)
	case constants.OutputYAML:
		return yaml.Marshal(res)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
