package main

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"github.com/esimov/movable"
	"github.com/esimov/movable/utils"
	"github.com/spf13/cobra"
)

func newPreviewCommand(cfg *config) *cobra.Command {
	var width, height, size float64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open an interactive preview window",
		Long: `Open a window acting as the area of a square view.

Drag the square with the mouse or a finger, pinch it on touch screens
or scroll over the window to scale it. Press ESC to close the window.

Examples:
  movable preview
  MOVABLE_DIRECTION=horizontal movable preview --size 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.loadOptions()
			if err != nil {
				return err
			}
			if opts.Direction == movable.DirectionNone {
				opts.Direction = movable.DirectionAll
			}
			p := movable.NewPreview(width, height, size, opts)
			p.Logger = log.Default()

			// Launch the Gio GUI thread.
			go func() {
				if err := p.Run(); err != nil {
					fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
					os.Exit(1)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 480, "Window width")
	cmd.Flags().Float64Var(&height, "height", 480, "Window height")
	cmd.Flags().Float64Var(&size, "size", 160, "View size")

	return cmd
}
