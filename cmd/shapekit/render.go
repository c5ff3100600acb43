package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapekit/internal/canvas"
	"github.com/vovakirdan/shapekit/internal/platform/tui"
)

var (
	flagRenderPlain bool
	flagSelect      string
	flagNoLabels    bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a scene to the terminal",
	Long: `Draws every shape of the scene on a character canvas. The canvas
uses the scene's size, shrunk to fit the terminal.

Examples:
  shapekit render
  shapekit render --select ball
  shapekit render --plain > scene.txt`,
	Run: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&flagRenderPlain, "plain", false, "Print runes only, without colors")
	renderCmd.Flags().StringVar(&flagSelect, "select", "", "Highlight a shape and what it collides with")
	renderCmd.Flags().BoolVar(&flagNoLabels, "no-labels", false, "Do not draw shape names")
}

func runRender(_ *cobra.Command, _ []string) {
	logger := newLogger()
	sc := loadScene(logger)

	width, height := sc.Width, sc.Height
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = min(width, w)
		height = min(height, h-1)
	}

	opts := tui.DrawOptions{Labels: !flagNoLabels}
	if flagSelect != "" {
		sel, ok := sc.Shape(flagSelect)
		if !ok {
			fail("unknown shape %q", flagSelect)
		}
		opts.Selected = sel
	}

	screen := canvas.NewScreen(width, height)
	tui.DrawScene(screen, sc, opts)

	if flagRenderPlain {
		fmt.Println(screen.String())
		return
	}
	fmt.Println(tui.RenderScreen(screen))
}
