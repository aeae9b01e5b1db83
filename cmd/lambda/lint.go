package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/martinemde/lambda/lambdaparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var warnColor = color.New(color.FgYellow)

var lintCmd = &cobra.Command{
	Use:   "lint <expr>...",
	Short: "Parse expressions and report lint diagnostics",
	Long: `Parse each expression and run the lint rules over it. Every expression is
checked even if an earlier one fails; the command fails if any expression does
not parse.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	out, err := newPrinter(cmd.OutOrStdout(), viper.GetString("format"))
	if err != nil {
		return err
	}
	defer out.Close()

	failed := 0
	var docs []diagnosticDoc
	for _, src := range args {
		term, err := lambdaparser.ParseString(src)
		if err != nil {
			failed++
			errColor.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", src, err)
			reportParseError(cmd.ErrOrStderr(), src, err)
			continue
		}

		for _, d := range lambdaparser.Validate(term) {
			if out.text() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", src, d)
			}
			docs = append(docs, newDiagnosticDoc(src, d))
		}
	}

	if !out.text() {
		if docs == nil {
			docs = []diagnosticDoc{}
		}
		if err := out.encode(docs); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d expression(s) failed to parse", failed, len(args))
	}
	return nil
}
