package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapekit/internal/platform/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Browse and edit a scene interactively",
	Long: `Opens the scene in a full-screen inspector. The status line shows
the selected shape and every shape it collides with.

Controls:
  Tab/Shift+Tab  - Select next/previous shape
  Arrows/WASD    - Move the selected shape
  +/-            - Grow/shrink the selected shape
  N              - Normalize a flipped rect
  L              - Toggle labels
  Ctrl+S         - Save as ~/.shapekit/scenes/<name>-edited.yaml
  Ctrl+P         - Save a text snapshot to ~/.shapekit/snapshots
  Q/Ctrl+C       - Quit`,
	Run: runInspect,
}

func runInspect(_ *cobra.Command, _ []string) {
	logger := newLogger()
	sc := loadScene(logger)

	if err := tui.Run(sc); err != nil {
		fail("%v", err)
	}
}
