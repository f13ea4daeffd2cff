package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/movable"
	"github.com/esimov/movable/utils"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff"}

func newReplayCommand(cfg *config) *cobra.Command {
	var (
		snapshot string
		content  string
	)

	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml|->",
		Short: "Replay a scripted gesture scenario",
		Long: `Replay a YAML scenario through an area and its view and print the emitted events.

The scenario holds the area and view boxes, the view options and a list of
timed steps (start, move, end, cancel, wait or attrs).

Examples:
  movable replay drag.yaml
  movable replay pinch.yaml --snapshot out.png --content photo.jpg
  cat drag.yaml | movable replay -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshot != "" && !isValidExtension(filepath.Ext(snapshot)) {
				return fmt.Errorf("%v file type not supported", filepath.Ext(snapshot))
			}
			src, err := openScenario(args[0])
			if err != nil {
				return err
			}
			defer src.Close()

			base, err := cfg.loadOptions()
			if err != nil {
				return err
			}
			sc, err := movable.DecodeScenario(src, base)
			if err != nil {
				return err
			}

			now := time.Now()
			res, err := movable.Replay(sc, log.Default())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)

			if snapshot != "" {
				if err := saveSnapshot(res, snapshot, content); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "\nThe snapshot has been saved as: %s\n",
					utils.DecorateText(filepath.Base(snapshot), utils.SuccessMessage))
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "\nExecution time: %s\n",
				utils.DecorateText(utils.FormatDuration(time.Since(now)), utils.SuccessMessage))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Render the final state into an image file")
	cmd.Flags().StringVar(&content, "content", "", "Image used as the view content of the snapshot")

	return cmd
}

// openScenario opens the scenario file, or stdin for the pipe name.
func openScenario(path string) (io.ReadCloser, error) {
	if path == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the scenario file: %w", err)
	}
	return f, nil
}

func printResult(w io.Writer, res *movable.ReplayResult) {
	for _, r := range res.Records {
		fmt.Fprintln(w, utils.DecorateText(r.String(), utils.EventMessage))
	}
	s := res.State
	fmt.Fprintf(w, "%s x=%s y=%s scale=%s settled after %s\n",
		utils.DecorateText("final", utils.StatusMessage),
		utils.FormatFloat(s.X), utils.FormatFloat(s.Y), utils.FormatFloat(s.ScaleValue),
		utils.FormatDuration(res.Elapsed),
	)
}

func saveSnapshot(res *movable.ReplayResult, path, content string) error {
	var src image.Image
	if content != "" {
		var err error
		if src, err = movable.LoadContent(content); err != nil {
			return err
		}
	}
	img, err := movable.Snapshot(res.State, res.Area, res.View, src)
	if err != nil {
		return err
	}
	return movable.SaveSnapshot(img, path)
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string) bool {
	for _, ex := range validExtensions {
		if ex == ext {
			return true
		}
	}
	return false
}
