package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adewitt/gestic/pkg/dispatcher"
	"github.com/adewitt/gestic/pkg/gesture"
	"github.com/adewitt/gestic/pkg/realize"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Realize the configuration and dispatch gesture events",
	Long: `Loads the configuration, realizes it for the selected platform, and
dispatches gesture events read from stdin until EOF. The gesture recognizer
feeds events as one line each:

    <kind> <fingers> <direction> <magnitude>

for example "swipe 3 up 140" or "pinch 2 in 1.6".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		rs, err := realize.Realize(doc, isWayland(), realize.Options{})
		if err != nil {
			return err
		}
		d := dispatcher.New(rs)
		log.Info().Int("pairs", rs.Len()).Msg("Dispatching gesture events from stdin")

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			ev, err := parseEvent(line)
			if err != nil {
				log.Warn().Err(err).Str("line", line).Msg("Ignoring malformed event")
				continue
			}
			// Action failures are logged by the dispatcher; the loop
			// keeps running.
			_ = d.Dispatch(ev)
		}
		return scanner.Err()
	},
}

var eventKinds = map[string]gesture.Kind{
	"swipe":  gesture.Swipe,
	"shear":  gesture.Shear,
	"pinch":  gesture.Pinch,
	"rotate": gesture.Rotate,
}

func parseEvent(line string) (gesture.Event, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return gesture.Event{}, fmt.Errorf("want 4 fields, got %d", len(fields))
	}
	kind, ok := eventKinds[strings.ToLower(fields[0])]
	if !ok {
		return gesture.Event{}, fmt.Errorf("unknown gesture kind %q", fields[0])
	}
	fingers, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return gesture.Event{}, fmt.Errorf("bad finger count %q: %w", fields[1], err)
	}
	magnitude, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return gesture.Event{}, fmt.Errorf("bad magnitude %q: %w", fields[3], err)
	}
	return gesture.Event{
		Kind:      kind,
		Fingers:   uint8(fingers),
		Direction: fields[2],
		Magnitude: magnitude,
	}, nil
}
