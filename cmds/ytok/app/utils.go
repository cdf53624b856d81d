package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/drone/envsubst"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddOutputFlag registers the common output format flag.
func AddOutputFlag(flags *pflag.FlagSet, output *string) {
	flags.StringVarP(output, "output", "o", "", "output format (json or yaml)")
}

// ReadDocument reads a document from the given path, "-" means stdin.
// If requested by the main options, environment variable references
// are substituted before the document is handed to the scanner.
func ReadDocument(cmd *cobra.Command, opts *Options, path string) (string, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = vfs.ReadFile(opts.fs, path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot read document %q: %w", path, err)
	}
	if opts.subst {
		return envsubst.EvalEnv(string(data))
	}
	return string(data), nil
}

func printLine(w io.Writer, cols []string, msg string) {
	args := make([]any, len(cols))
	for i, c := range cols {
		args[i] = c
	}
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, args...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}
