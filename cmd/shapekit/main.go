// shapekit loads 2D shape scenes and evaluates collision queries on them.
//
// Usage:
//
//	shapekit list               - List query ops and saved scenes
//	shapekit eval               - Evaluate the queries of a scene
//	shapekit query <op> <shape>  - Run one query against a scene
//	shapekit render             - Draw a scene to the terminal
//	shapekit inspect            - Browse and edit a scene interactively
//	shapekit serve              - Serve the inspector over SSH
//	shapekit history            - Show recorded eval runs
//
// Global flags:
//
//	--scene <name|path>  - Scene name or YAML file (default: demo)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--db <path>          - Eval history database (default: ~/.shapekit/history.db)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapekit/internal/scene"
	"github.com/vovakirdan/shapekit/internal/storage"
)

var (
	// Global flags
	flagScene    string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapekit",
	Short: "shapekit - 2D shapes and collision queries in your terminal",
	Long: `shapekit evaluates collision and geometry queries over scenes of
circles, rects and line segments, and draws them in the terminal.

Available commands:
  list     - Show query ops and saved scenes
  eval     - Evaluate a scene's queries
  query    - Run a single query
  render   - Draw a scene
  inspect  - Interactive scene inspector
  serve    - Start SSH server for the inspector
  history  - Show recorded eval runs

Examples:
  shapekit eval
  shapekit eval --scene ./scenes/pool.yaml
  shapekit query collide ball moon
  shapekit render --plain
  shapekit serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagScene, "scene", scene.DefaultName, "Scene name or path to a scene YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to eval history database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the stderr logger for the --log-level flag.
func newLogger() *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid log level %q", flagLogLevel)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shapekit",
		Level:           level,
	})
}

// sceneSource splits --scene into a file path or a scene name.
func sceneSource() (path, name string) {
	if strings.HasSuffix(flagScene, ".yaml") || strings.HasSuffix(flagScene, ".yml") ||
		strings.ContainsRune(flagScene, os.PathSeparator) {
		return flagScene, ""
	}
	return "", flagScene
}

// loadScene loads the scene named by --scene or exits.
func loadScene(logger *log.Logger) *scene.Scene {
	path, name := sceneSource()
	sc, err := scene.Load(path, name)
	if err != nil {
		fail("cannot load scene %q: %v", flagScene, err)
	}
	logger.Debug("scene loaded", "name", sc.Name, "shapes", len(sc.Shapes), "queries", len(sc.Queries))
	return sc
}
