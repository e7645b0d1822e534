package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
	"github.com/ironsheep/img-to-ascii/internal/playback"
	"github.com/ironsheep/img-to-ascii/internal/server"
)

func newServeCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdin/stdout",
		Long: `Serve the image_load, image_dimensions, ascii_geometry and ascii_render
tools over the Model Context Protocol. Requests are read from stdin and
responses written to stdout, one JSON-RPC message per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server.Version = Version
			if debugEnabled(verbose) {
				log.Printf("img-to-ascii MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
			}
			if err := server.New().Run(); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log startup details to stderr")
	return cmd
}

func newPlayHTMLCmd() *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "play-html <directory>",
		Short: "Open every .html file in a directory in the system browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := imaging.ListImages(args[0])
			if err != nil {
				return err
			}
			var pages []string
			for _, f := range files {
				if strings.EqualFold(filepath.Ext(f), ".html") {
					pages = append(pages, f)
				}
			}
			if len(pages) == 0 {
				return fmt.Errorf("no .html files in %s", args[0])
			}

			errs := playback.OpenSequence(pages, delay, playback.SystemOpener, nil)
			for _, err := range errs {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d of %d pages failed to open", len(errs), len(pages))
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", playback.DefaultPeriod, "time between pages")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "img-to-ascii %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	}
}
