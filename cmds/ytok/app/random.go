package app

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/goombaio/namegenerator"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"
)

type Random struct {
	cmd *cobra.Command

	mainopts *Options
	seed     int64
	depth    int
	output   string
}

func NewRandom(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random <options>",
		Short: "generate a random well-formed document",
		Long: `
This command generates a pseudo-random document for corpus building.
The same seed always generates the same document.
`,
	}

	c := &Random{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.Int64VarP(&c.seed, "seed", "s", 0, "generator seed (default: current time)")
	flags.IntVarP(&c.depth, "depth", "d", 3, "maximum nesting depth")
	flags.StringVarP(&c.output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func (c *Random) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("no arguments expected")
	}

	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	doc := newGenerator(seed).Document(c.depth)

	if c.output == "" || c.output == "-" {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s", doc)
		return nil
	}
	return vfs.WriteFile(c.mainopts.fs, c.output, []byte(doc), 0o644)
}

type generator struct {
	rand  *rand.Rand
	names namegenerator.Generator
}

func newGenerator(seed int64) *generator {
	return &generator{
		rand:  rand.New(rand.NewSource(seed)),
		names: namegenerator.NewNameGenerator(seed),
	}
}

func (g *generator) Document(depth int) string {
	buf := &strings.Builder{}
	g.mapping(buf, 0, depth)
	return buf.String()
}

func (g *generator) mapping(w *strings.Builder, indent, depth int) {
	n := 2 + g.rand.Intn(3)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s%s:", strings.Repeat(" ", indent), g.names.Generate())
		switch {
		case depth > 0 && g.rand.Intn(100) < 30:
			w.WriteString("\n")
			g.mapping(w, indent+2, depth-1)
		case depth > 0 && g.rand.Intn(100) < 30:
			w.WriteString("\n")
			g.sequence(w, indent+2, depth-1)
		default:
			fmt.Fprintf(w, " %s\n", g.scalar())
		}
	}
}

func (g *generator) sequence(w *strings.Builder, indent, depth int) {
	n := 1 + g.rand.Intn(3)
	for i := 0; i < n; i++ {
		gap := strings.Repeat(" ", indent)
		if depth > 0 && g.rand.Intn(100) < 20 {
			fmt.Fprintf(w, "%s- %s:\n", gap, g.names.Generate())
			g.mapping(w, indent+4, depth-1)
		} else {
			fmt.Fprintf(w, "%s- %s\n", gap, g.scalar())
		}
	}
}

// scalar produces a random scalar value. The token set has no
// list separator, so flow collections are restricted to a single
// entry.
func (g *generator) scalar() string {
	switch g.rand.Intn(6) {
	case 0:
		return uuid.Must(uuid.NewRandomFromReader(g.rand)).String()
	case 1:
		return fmt.Sprintf("%q", g.names.Generate())
	case 2:
		return fmt.Sprintf("'%s'", g.names.Generate())
	case 3:
		return fmt.Sprintf("{%s: %s}", g.names.Generate(), g.names.Generate())
	case 4:
		return fmt.Sprintf("[%s]", g.names.Generate())
	default:
		return g.names.Generate()
	}
}
