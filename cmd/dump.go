package cmd

import (
	"fmt"

	"github.com/iancoleman/strcase"
	"github.com/urfave/cli"

	"github.com/arr-ai/lrgen/examples/simpl"
	"github.com/arr-ai/lrgen/grammar"
)

var dumpCommand = cli.Command{
	Name:    "dump",
	Aliases: []string{"d"},
	Usage:   "Print the generated artifacts of the sample simpl language",
	Action:  dump,
}

func dump(c *cli.Context) error {
	lang := simpl.Lang()
	g := lang.Grammar()

	fmt.Println("// Token kinds")
	fmt.Println("const (")
	for k := 0; k < g.NumKinds(); k++ {
		fmt.Printf("\tTok%s = %d\n", strcase.ToCamel(g.KindName(grammar.Kind(k))), k)
	}
	fmt.Println(")")
	fmt.Println()

	fmt.Println("// Productions")
	for i := range g.Productions() {
		p := &g.Productions()[i]
		fmt.Printf("// %3d: %s\n", i, g.ProdString(p))
	}
	fmt.Println()

	for _, w := range lang.Warnings() {
		fmt.Printf("// warning: %s\n", w)
	}
	fmt.Printf("// DFA: %d states\n", lang.DFA().NumStates())
	fmt.Printf("// LR table: %d states\n", lang.Table().NumStates())
	return nil
}
