// Command gosddctl is a small inspection CLI over the gosdd library: it
// builds a diagram from a flat dictionary-style order and a single tuple
// (the i-th identifier labelled with the value i), then prints its path count and, optionally, a
// Graphviz rendering. It exists to exercise the config, manager and
// sdd/visit packages end to end, the way
// _examples/AKJUS-bsc-erigon ships small cmd/ diagnostics alongside its
// library packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gosdd/gosdd/config"
	"github.com/gosdd/gosdd/manager"
	"github.com/gosdd/gosdd/order"
	"github.com/gosdd/gosdd/sdd/visit"
	"github.com/gosdd/gosdd/values"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	fs := pflag.NewFlagSet("gosddctl", pflag.ContinueOnError)
	cfg := config.RegisterFlags(fs)

	var identifiers []string
	var dot bool

	cmd := &cobra.Command{
		Use:   "gosddctl",
		Short: "Build a demonstration SDD over a flat dictionary order and report on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(*cfg, identifiers, dot)
		},
	}
	cmd.Flags().AddFlagSet(fs)
	cmd.Flags().StringSliceVar(&identifiers, "identifiers", []string{"a", "b", "c"}, "flat identifiers making up the demonstration order, outermost first")
	cmd.Flags().BoolVar(&dot, "dot", false, "print a Graphviz rendering of the diagram instead of its path count")
	return cmd
}

func run(cfg config.Config, identifiers []string, dot bool) error {
	mgr, err := manager.New[string](cfg)
	if err != nil {
		return err
	}
	defer mgr.Close()

	b := order.NewBuilder[string]()
	for _, id := range identifiers {
		b = b.Push(id)
	}
	o, err := order.Build(b)
	if err != nil {
		return err
	}

	store := mgr.Store()
	s := store.One()
	for i := len(identifiers) - 1; i >= 0; i-- {
		v, err := o.IdentifierVariable(identifiers[i])
		if err != nil {
			return err
		}
		s = store.Flat(v, values.NewBitsetValues(uint(i)), s)
	}

	if dot {
		g := visit.RenderDOT[string](s, o)
		fmt.Println(g.String())
		return nil
	}

	count, err := visit.CountPaths(s)
	if err != nil {
		return err
	}
	fmt.Printf("diagram encodes %s tuple(s) over %d identifier(s)\n", count.String(), len(identifiers))
	return nil
}
