package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adewitt/gestic/pkg/action"
	"github.com/adewitt/gestic/pkg/device"
	"github.com/adewitt/gestic/pkg/realize"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and show the realized ruleset",
	Long: `Loads the configuration file, realizes it for the selected platform,
and prints the resulting trigger/action pairs. No virtual device is created
and no action is executed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		rs, err := realize.Realize(doc, isWayland(), realize.Options{
			OpenDevice: openNopDevice,
		})
		if err != nil {
			return err
		}

		platform := "x11"
		if isWayland() {
			platform = "wayland"
		}
		fmt.Printf("%s: %d trigger(s) on %s\n", configPath(), rs.Len(), platform)
		for i := range rs.Triggers {
			t := rs.Triggers[i]
			fmt.Printf("  %2d. %s %d %s (threshold %g) -> %s\n",
				i+1, strings.ToLower(string(t.Kind())), t.Fingers(), t.Direction(),
				t.Threshold(), describeAction(rs.Actions[i]))
		}
		return nil
	},
}

func describeAction(a action.Action) string {
	switch a := a.(type) {
	case *action.KeyboardInput:
		parts := make([]string, 0, len(a.Modifiers())+len(a.Sequence()))
		for _, k := range a.Modifiers() {
			parts = append(parts, k.String())
		}
		for _, k := range a.Sequence() {
			parts = append(parts, k.String())
		}
		return "keyboard input " + strings.Join(parts, "+")
	case *action.Command:
		return "command " + strings.Join(append([]string{a.Path()}, a.Args()...), " ")
	case *action.Script:
		return "inline script"
	}
	return "unknown action"
}

// openNopDevice stands in for the real device so check never touches
// /dev/uinput.
func openNopDevice() (device.Keyboard, error) {
	return nopKeyboard{}, nil
}

type nopKeyboard struct{}

func (nopKeyboard) KeyDown(int) error  { return nil }
func (nopKeyboard) KeyUp(int) error    { return nil }
func (nopKeyboard) KeyPress(int) error { return nil }
func (nopKeyboard) Close() error       { return nil }
