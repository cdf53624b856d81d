package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/mandelsoft/yamlex/pkg/utils"
)

type Options struct {
	logLevel string
	subst    bool
	fs       vfs.FileSystem
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "ytok <options> <cmd> <args>",
		Short: "inspect token streams of YAML-like documents",
		Long: `
This command scans YAML-like documents and provides access to the
resulting token stream.
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Setup()
		},
		Run:              nil,
		TraverseChildren: true,
	}

	flags := maincmd.Flags()

	flags.StringVarP(&opts.logLevel, "log-level", "L", "", "log level")
	flags.BoolVarP(&opts.subst, "subst", "e", false, "substitute environment variables in documents")

	maincmd.AddCommand(NewTokens(opts))
	maincmd.AddCommand(NewFingerprint(opts))
	maincmd.AddCommand(NewRandom(opts))
	return maincmd
}

func (o *Options) Setup() error {
	if o.logLevel == "" {
		return nil
	}
	l, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", o.logLevel)
	}
	lctx := logging.DefaultContext()
	lctx.SetBaseLogger(logrusr.New(logrusl.Human(true).NewLogrus()))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("scanner")))
	return nil
}
