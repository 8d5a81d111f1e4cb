package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"voice-task-extractor/pkg/datemath"
	"voice-task-extractor/pkg/taskextract"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type options struct {
	timezone          string
	weekdayResolution string
	output            string
	now               string
}

// cliTask is a task as printed by the CLI; dates are plain calendar days.
type cliTask struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
	Source   string `json:"source"`
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "extract [transcription...]",
		Short: "Extract to-do items from a voice note transcription",
		Long: `extract reads a speech-to-text transcription from its arguments, or from
standard input when none are given, and prints one task per task-worthy
sentence and mentioned date.

Examples:
  extract "I need to call the dentist tomorrow. Submit the report on 14/03/2025, it's urgent."
  cat note.txt | extract --output json --timezone Europe/Paris`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(in, out, args, opts)
		},
	}

	cmd.SetOut(out)
	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone in which today and due dates are computed")
	cmd.Flags().StringVar(&opts.weekdayResolution, "weekday-resolution", string(taskextract.WeekdayNextOccurrence),
		"how weekday names are handled: next_occurrence or unresolved")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output format: text or json")
	cmd.Flags().StringVar(&opts.now, "now", "", "reference time (RFC 3339 or YYYY-MM-DD), defaults to the current time")

	return cmd
}

func runExtract(in io.Reader, out io.Writer, args []string, opts options) error {
	if opts.output != outputText && opts.output != outputJSON {
		return fmt.Errorf("unknown output format %q (want text or json)", opts.output)
	}
	mode := taskextract.WeekdayResolution(opts.weekdayResolution)
	if !mode.Valid() {
		return fmt.Errorf("unknown weekday resolution %q", opts.weekdayResolution)
	}

	dates, err := datemath.NewParser(opts.timezone)
	if err != nil {
		return err
	}
	now, err := referenceTime(opts.now, dates.Location())
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(raw)
	}

	extractor := taskextract.New(
		taskextract.WithLocation(dates.Location()),
		taskextract.WithWeekdayResolution(mode),
	)
	tasks := toCLITasks(extractor.ExtractAt(text, now))

	if opts.output == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}
	return printText(out, tasks)
}

func referenceTime(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(datemath.DayKeyLayout, raw, loc); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("--now must be RFC 3339 or YYYY-MM-DD")
}

func toCLITasks(tasks []taskextract.Task) []cliTask {
	out := make([]cliTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, cliTask{
			ID:       t.ID,
			Text:     t.Text,
			Date:     t.Date.Format(datemath.DayKeyLayout),
			Priority: string(t.Priority),
			Source:   string(t.Source),
		})
	}
	return out
}

func printText(out io.Writer, tasks []cliTask) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(out, "No tasks found.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tPRIORITY\tTASK")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Date, t.Priority, t.Text)
	}
	return w.Flush()
}
