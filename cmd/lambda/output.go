package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/martinemde/lambda/lambdaparser"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// printer writes command results in the selected output format. In text
// mode callers render lines themselves; json and yaml encode documents.
type printer struct {
	w      io.Writer
	format string
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}
	p := &printer{w: w, format: format}
	switch format {
	case formatJSON:
		p.json = json.NewEncoder(w)
		p.json.SetIndent("", "  ")
	case formatYAML:
		p.yaml = yaml.NewEncoder(w)
		p.yaml.SetIndent(2)
	}
	return p, nil
}

func (p *printer) text() bool { return p.format == formatText }

func (p *printer) encode(v any) error {
	switch {
	case p.json != nil:
		return p.json.Encode(v)
	case p.yaml != nil:
		return p.yaml.Encode(v)
	default:
		_, err := fmt.Fprintln(p.w, v)
		return err
	}
}

// Close flushes any buffered yaml output.
func (p *printer) Close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}

// termDoc is the json/yaml shape of a parsed term.
type termDoc struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Param  string   `json:"param,omitempty" yaml:"param,omitempty"`
	Body   *termDoc `json:"body,omitempty" yaml:"body,omitempty"`
	Fn     *termDoc `json:"fn,omitempty" yaml:"fn,omitempty"`
	Arg    *termDoc `json:"arg,omitempty" yaml:"arg,omitempty"`
	Line   int      `json:"line" yaml:"line"`
	Column int      `json:"column" yaml:"column"`
}

func newTermDoc(t lambdaparser.Term) *termDoc {
	pos := t.Pos()
	doc := &termDoc{Line: pos.Line, Column: pos.Column}
	switch n := t.(type) {
	case *lambdaparser.Name:
		doc.Kind = "name"
		doc.Name = n.ID
	case *lambdaparser.Abstraction:
		doc.Kind = "abstraction"
		doc.Param = n.Param.ID
		doc.Body = newTermDoc(n.Body)
	case *lambdaparser.Application:
		doc.Kind = "application"
		doc.Fn = newTermDoc(n.Fn)
		doc.Arg = newTermDoc(n.Arg)
	}
	return doc
}

// resultDoc is one parsed expression: its source, canonical text and tree.
type resultDoc struct {
	Source    string   `json:"source" yaml:"source"`
	Canonical string   `json:"canonical" yaml:"canonical"`
	Term      *termDoc `json:"term" yaml:"term"`
}

type tokenDoc struct {
	Kind    string `json:"kind" yaml:"kind"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

func newTokenDoc(tok lambdaparser.Token) tokenDoc {
	return tokenDoc{
		Kind:    tok.Kind.String(),
		Literal: tok.Literal,
		Line:    tok.Pos.Line,
		Column:  tok.Pos.Column,
	}
}

type diagnosticDoc struct {
	Source   string `json:"source" yaml:"source"`
	Rule     string `json:"rule" yaml:"rule"`
	Severity string `json:"severity" yaml:"severity"`
	Message  string `json:"message" yaml:"message"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
	Fix      string `json:"fix,omitempty" yaml:"fix,omitempty"`
}

func newDiagnosticDoc(src string, d lambdaparser.Diagnostic) diagnosticDoc {
	return diagnosticDoc{
		Source:   src,
		Rule:     d.Rule,
		Severity: d.Severity.String(),
		Message:  d.Message,
		Name:     d.Name,
		Line:     d.Pos.Line,
		Column:   d.Pos.Column,
		Fix:      d.Fix,
	}
}

// caret renders the source line pos points into with a marker under the
// offending column, keeping tabs so the marker lines up.
func caret(src string, pos lambdaparser.Position) string {
	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[pos.Line-1], "\r")

	var pad strings.Builder
	col := 1
	for _, r := range line {
		if col >= pos.Column {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteRune(' ')
		}
		col++
	}
	for ; col < pos.Column; col++ {
		pad.WriteRune(' ')
	}
	return fmt.Sprintf("  %s\n  %s^", line, pad.String())
}
