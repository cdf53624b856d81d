package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/yamlex/pkg/scanner"
)

type Tokens struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

func NewTokens(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file> <options>",
		Short: "print the token stream of a document",
	}

	c := &Tokens{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	AddOutputFlag(cmd.Flags(), &c.output)
	return cmd
}

func (c *Tokens) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("document argument required")
	}

	data, err := ReadDocument(c.cmd, c.mainopts, args[0])
	if err != nil {
		return err
	}

	tokens, scanerr := scanner.Tokenize(data)

	switch strings.ToLower(strings.TrimSpace(c.output)) {
	case "":
		PrintTokenList(c.cmd.OutOrStdout(), tokens)
	case "json":
		data, err := json.Marshal(NewTokenList(tokens))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", string(data))
	case "yaml":
		data, err := yaml.Marshal(NewTokenList(tokens))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s", string(data))
	default:
		return fmt.Errorf("invalid output format %q", c.output)
	}

	if scanerr != nil {
		return fmt.Errorf("%s: %w", args[0], scanerr)
	}
	return nil
}

func PrintTokenList(w io.Writer, tokens []scanner.Token) {
	columnList := []string{"POSITION", "TOKEN", "VALUE"}

	var fieldList [][]string
	for _, t := range tokens {
		fieldList = append(fieldList, []string{t.Pos.String(), t.Type.String(), tokenValue(t)})
	}

	max := make([]int, len(columnList))
	for i, s := range columnList {
		max[i] = len(s)
	}
	for _, cols := range fieldList {
		for i, s := range cols {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columnList, f)
	for _, cols := range fieldList {
		printLine(w, cols, f)
	}
}

func tokenValue(t scanner.Token) string {
	switch t.Type {
	case scanner.TokenSpaces:
		return strconv.Itoa(t.Count)
	case scanner.TokenString:
		return strconv.Quote(t.Text)
	}
	return ""
}
