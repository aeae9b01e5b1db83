package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/martinemde/lambda/lambdaparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expr>...",
	Short: "Parse and scope-check lambda expressions",
	Long: `Parse each expression, print it in canonical form (or as a json/yaml tree),
and stop at the first expression that fails to lex, parse or scope-check.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("trace", false, "Log every grammar rule and scope change to stderr")
	parseCmd.Flags().Bool("lint", false, "Also report lint warnings for each expression")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	trace, _ := cmd.Flags().GetBool("trace")
	lint, _ := cmd.Flags().GetBool("lint")
	verbose := viper.GetBool("verbose")

	out, err := newPrinter(cmd.OutOrStdout(), viper.GetString("format"))
	if err != nil {
		return err
	}
	defer out.Close()

	var opts []lambdaparser.Option
	if trace {
		emitter := lambdaparser.NewEventEmitter()
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		emitter.On(traceListener(logger))
		opts = append(opts, lambdaparser.WithEvents(emitter))
	}

	for _, src := range args {
		term, err := lambdaparser.ParseString(src, opts...)
		if err != nil {
			reportParseError(cmd.ErrOrStderr(), src, err)
			return fmt.Errorf("parsing %q: %w", src, err)
		}

		if verbose {
			slog.Info("parsed expression", "source", src, "nodes", countNodes(term))
		}

		if out.text() {
			fmt.Fprintln(cmd.OutOrStdout(), lambdaparser.Format(term))
		} else if err := out.encode(resultDoc{
			Source:    src,
			Canonical: lambdaparser.Format(term),
			Term:      newTermDoc(term),
		}); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		if lint {
			for _, d := range lambdaparser.Validate(term) {
				warnColor.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", src, d)
			}
		}
	}
	return nil
}

// reportParseError shows the offending source position under the error.
func reportParseError(w io.Writer, src string, err error) {
	var located interface{ Position() lambdaparser.Position }
	if !errors.As(err, &located) {
		return
	}
	if snippet := caret(src, located.Position()); snippet != "" {
		fmt.Fprintln(w, snippet)
	}
}

func countNodes(t lambdaparser.Term) int {
	n := 0
	lambdaparser.Walk(t, func(lambdaparser.Term) bool {
		n++
		return true
	})
	return n
}

// traceListener returns an event listener that logs parser progress.
func traceListener(logger *slog.Logger) func(lambdaparser.Event) {
	return func(e lambdaparser.Event) {
		switch e.Type {
		case lambdaparser.EventRuleEntered:
			logger.Debug("enter",
				"rule", e.Data["rule"],
				"token", e.Data["token"],
				"literal", e.Data["literal"],
				"column", e.Data["column"])

		case lambdaparser.EventScopePushed:
			logger.Debug("bind", "binder", e.Data["binder"], "depth", e.Data["depth"])

		case lambdaparser.EventScopePopped:
			logger.Debug("unbind", "binder", e.Data["binder"], "depth", e.Data["depth"])

		case lambdaparser.EventParseFailed:
			logger.Debug("failed", "error", e.Data["error"])

		default:
			logger.Debug(string(e.Type))
		}
	}
}
