package main

import (
	"fmt"

	"github.com/martinemde/lambda/lambdaparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <expr>",
	Short: "Print the token stream of an expression",
	Long:  "Tokenize an expression without parsing it. Unrecognized characters show up as error tokens.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	out, err := newPrinter(cmd.OutOrStdout(), viper.GetString("format"))
	if err != nil {
		return err
	}
	defer out.Close()

	tokens := lambdaparser.Tokenize(args[0])

	if !out.text() {
		docs := make([]tokenDoc, len(tokens))
		for i, tok := range tokens {
			docs[i] = newTokenDoc(tok)
		}
		return out.encode(docs)
	}

	for _, tok := range tokens {
		fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\t%-6s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Literal)
	}
	return nil
}
