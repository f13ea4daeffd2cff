package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/esimov/movable"
	"github.com/esimov/movable/utils"
	"github.com/spf13/cobra"
)

const helpBanner = `
┌┬┐┌─┐┬  ┬┌─┐┌┐ ┬  ┌─┐
││││ │└┐┌┘├─┤├┴┐│  ├┤
┴ ┴└─┘ └┘ ┴ ┴└─┘┴─┘└─┘

Bounded drag and pinch-zoom transform engine.
    Version: %s
`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version = "dev"

// config holds the flags shared by every subcommand.
type config struct {
	debug   bool
	options string
}

func main() {
	log.SetFlags(0)

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:          "movable",
		Short:        "Replay and preview drag/pinch gestures",
		Long:         fmt.Sprintf(helpBanner, Version),
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ltime | log.Lmicroseconds)
			} else {
				log.SetOutput(io.Discard)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfg.options, "options", "", "YAML file with the view options")

	cmd.AddCommand(newReplayCommand(cfg))
	cmd.AddCommand(newPreviewCommand(cfg))

	return cmd
}

// loadOptions returns the defaults, overridden by the options file
// and then by the MOVABLE_* environment variables.
func (c *config) loadOptions() (movable.Options, error) {
	opts := movable.DefaultOptions()
	if c.options != "" {
		var err error
		if opts, err = movable.LoadOptions(c.options); err != nil {
			return opts, err
		}
	}
	if err := movable.ParseEnv(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}
