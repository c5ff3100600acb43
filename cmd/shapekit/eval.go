package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapekit/internal/query"
	"github.com/vovakirdan/shapekit/internal/registry"
	"github.com/vovakirdan/shapekit/internal/scene"
	"github.com/vovakirdan/shapekit/internal/storage"
)

var (
	flagPlain  bool
	flagRecord bool
	flagParams []float64
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the queries of a scene",
	Long: `Runs every query listed in the scene file and prints the results.
A failing query is reported and the rest still run; the command exits
non-zero if any query failed.

Examples:
  shapekit eval
  shapekit eval --scene pool --plain
  shapekit eval --record`,
	Run: runEval,
}

var queryCmd = &cobra.Command{
	Use:   "query <op> [shape...]",
	Short: "Run one query against a scene",
	Long: `Runs a single op on the named shapes of the scene.

Examples:
  shapekit query collide ball moon
  shapekit query scale beam --param 0.5 --param 0.5`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuery,
}

func init() {
	evalCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print tab-separated results without styling")
	evalCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run in the history database")
	queryCmd.Flags().Float64SliceVar(&flagParams, "param", nil, "Numeric op parameter (repeatable)")
}

func runEval(_ *cobra.Command, _ []string) {
	logger := newLogger()
	sc := loadScene(logger)

	outcomes := query.Evaluate(sc, logger)
	if flagPlain {
		printPlain(outcomes)
	} else {
		fmt.Println(outcomeTable(sc, outcomes))
	}

	if flagRecord {
		recordRun(logger, sc.Name, outcomes)
	}

	if failed := query.Failed(outcomes); failed > 0 {
		fail("%d of %d queries failed", failed, len(outcomes))
	}
}

func runQuery(_ *cobra.Command, args []string) {
	logger := newLogger()
	sc := loadScene(logger)

	if !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown op %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'shapekit list' to see available ops.")
		os.Exit(1)
	}

	q := scene.Query{Op: args[0], Args: args[1:], Params: flagParams}
	res, err := query.Run(sc, q)
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(res.Text)
}

func printPlain(outcomes []query.Outcome) {
	for i, o := range outcomes {
		status, text := "ok", o.Result.Text
		if !o.OK() {
			status, text = "error", o.Err.Error()
		}
		fmt.Printf("%d\t%s\t%s\t%s\n", i+1, o.Query, status, text)
	}
}

// outcomeTable renders the outcomes as a bubbles table.
func outcomeTable(sc *scene.Scene, outcomes []query.Outcome) string {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Query", Width: 24},
		{Title: "Result", Width: 40},
	}

	rows := make([]table.Row, len(outcomes))
	for i, o := range outcomes {
		text := o.Result.Text
		if !o.OK() {
			text = "error: " + o.Err.Error()
		}
		q := o.Query.String()
		columns[1].Width = max(columns[1].Width, len(q))
		columns[2].Width = max(columns[2].Width, len(text))
		rows[i] = table.Row{strconv.Itoa(i + 1), q, text}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is focused in a static listing.
	s.Selected = s.Cell
	t.SetStyles(s)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).
		Render(fmt.Sprintf("%s: %d queries", sc.Name, len(outcomes)))

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(t.View())
	return sb.String()
}

// recordRun stores the outcomes in the history database. Failures are
// logged and do not change the exit status.
func recordRun(logger *log.Logger, sceneName string, outcomes []query.Outcome) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	records := make([]storage.ResultRecord, len(outcomes))
	for i, o := range outcomes {
		records[i] = storage.ResultRecord{Query: o.Query.String(), OK: o.OK(), Text: o.Result.Text}
		if !o.OK() {
			records[i].Text = o.Err.Error()
		}
	}

	id, err := store.SaveRun(sceneName, records)
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id, "scene", sceneName)
}
