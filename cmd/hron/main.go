// Command hron is the thin CLI front-end over the hron library: it parses a
// schedule expression (or a cron string via --from-cron), and prints its
// canonical form plus whichever occurrences were asked for.
//
// Flag parsing is cobra; hron's own errors go to stderr as caret-underlined
// text, and any other error through zerolog's console writer. This command carries no logic of its own beyond argument
// plumbing and exit-code bookkeeping: every real behavior is a direct
// call into the hron package.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/prasrvenkat/hron"
)

const maxOccurrences = 1000

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	var (
		fromCronText string
		explainText  string
		count        int
		asJSON       bool
		checkOnly    bool
		parseOnly    bool
		toCron       bool
		fromText     string
		toText       string
	)

	exitCode := 0
	cmd := &cobra.Command{
		Use:           "hron [expression]",
		Short:         "parse, display, and evaluate hron schedule expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := execute(cmd, args, fromCronText, explainText, count, asJSON, checkOnly, parseOnly, toCron, fromText, toText)
			exitCode = code
			return err
		},
	}

	cmd.Flags().StringVar(&fromCronText, "from-cron", "", "interpret CRON as a 5-field cron expression instead of an hron expression")
	cmd.Flags().StringVar(&explainText, "explain", "", "explain CRON as hron display text plus a firing-minute advisory")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "print the next N occurrences (0 to 1000; larger values are rejected)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON instead of plain text")
	cmd.Flags().BoolVar(&checkOnly, "check", false, "only validate the expression; print \"ok\" when it is valid")
	cmd.Flags().BoolVar(&parseOnly, "parse", false, "emit the parsed AST as JSON")
	cmd.Flags().BoolVar(&toCron, "to-cron", false, "render the expression as a 5-field cron string")
	cmd.Flags().StringVar(&fromText, "from", "", "reference instant (RFC3339); defaults to now")
	cmd.Flags().StringVar(&toText, "to", "", "inclusive upper bound instant (RFC3339); requires --from")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if exitCode == 0 {
			exitCode = 1
		}
		reportError(err)
	}
	return exitCode
}

func execute(cmd *cobra.Command, args []string, fromCronText, explainText string, count int, asJSON, checkOnly, parseOnly, toCron bool, fromText, toText string) (int, error) {
	if explainText != "" {
		explained, err := hron.ExplainCron(explainText)
		if err != nil {
			return 1, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), explained)
		return 0, nil
	}

	var (
		sch hron.Schedule
		err error
	)
	switch {
	case fromCronText != "":
		sch, err = hron.FromCron(fromCronText)
	case len(args) == 1:
		sch, err = hron.Parse(args[0])
	default:
		return 2, fmt.Errorf("hron: no expression given (pass one as an argument, or use --from-cron / --explain)")
	}
	if err != nil {
		return 1, err
	}

	if checkOnly {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return 0, nil
	}

	if parseOnly {
		enc, err := json.MarshalIndent(hron.ScheduleAST(sch), "", "  ")
		if err != nil {
			return 1, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return 0, nil
	}

	if toCron {
		cronText, err := sch.ToCron()
		if err != nil {
			return 1, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cronText)
		return 0, nil
	}

	if count < 0 || count > maxOccurrences {
		return 2, fmt.Errorf("hron: -n must be between 0 and %d", maxOccurrences)
	}

	now := time.Now()
	if fromText != "" {
		now, err = time.Parse(time.RFC3339, fromText)
		if err != nil {
			return 1, fmt.Errorf("hron: invalid --from instant %q: %w", fromText, err)
		}
	}

	var times []time.Time
	switch {
	case toText != "":
		if fromText == "" {
			return 2, fmt.Errorf("hron: --to requires --from")
		}
		to, err := time.Parse(time.RFC3339, toText)
		if err != nil {
			return 1, fmt.Errorf("hron: invalid --to instant %q: %w", toText, err)
		}
		times, err = sch.Between(now, to)
		if err != nil {
			return 1, err
		}
	case count > 0:
		times, err = sch.NextNFrom(now, count)
		if err != nil {
			return 1, err
		}
	default:
		t, ok, err := sch.NextFrom(now)
		if err != nil {
			return 1, err
		}
		if ok {
			times = []time.Time{t}
		}
	}

	if asJSON {
		stamps := make([]string, 0, len(times))
		for _, t := range times {
			stamps = append(stamps, t.Format(time.RFC3339))
		}
		out := map[string]any{"display": sch.String(), "occurrences": stamps}
		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return 1, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return 0, nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), sch.String())
	for _, t := range times {
		fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
	}
	return 0, nil
}

// reportError renders a carat-underlined span for lex/parse failures, per
// spec.md's "rich errors with a carat-underlined source span" requirement,
// falling back to a plain message for every other error shape.
func reportError(err error) {
	var richErr *hron.Error
	if asHronError(err, &richErr) {
		fmt.Fprintln(os.Stderr, richErr.Rich())
		return
	}
	log.Error().Err(err).Msg("hron")
}

func asHronError(err error, target **hron.Error) bool {
	he, ok := err.(*hron.Error)
	if !ok {
		return false
	}
	*target = he
	return true
}
