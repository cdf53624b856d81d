package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandelsoft/yamlex/pkg/scanner"
	"github.com/mandelsoft/yamlex/pkg/utils"
)

type Fingerprint struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewFingerprint(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <file>",
		Short: "print a canonical hash of the token stream of a document",
		Long: `
The fingerprint is calculated over the canonical serialization of the
token stream. It can be used to compare the lexical structure of
documents independent of their serialization.
`,
	}

	c := &Fingerprint{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *Fingerprint) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("document argument required")
	}

	data, err := ReadDocument(c.cmd, c.mainopts, args[0])
	if err != nil {
		return err
	}

	tokens, err := scanner.Tokenize(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", utils.HashData(NewTokenList(tokens)))
	return nil
}
