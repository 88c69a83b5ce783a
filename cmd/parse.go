package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/lrgen/examples/simpl"
)

var evalMode bool

var parseCommand = cli.Command{
	Name:    "parse",
	Aliases: []string{"p"},
	Usage:   "Parse an input file with the sample simpl language and print the AST",
	Action:  parse,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "input",
			Usage:       "input file (default stdin)",
			Required:    false,
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.BoolFlag{
			Name:        "eval",
			Usage:       "evaluate the AST and print the result",
			Required:    false,
			Destination: &evalMode,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Required:    false,
			Destination: &verboseMode,
		},
	},
}

func parse(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	src, err := loadInput()
	if err != nil {
		return err
	}

	v, err := simpl.Lang().Parse(src)
	if err != nil {
		return err
	}
	ast := v.(simpl.Expr)
	fmt.Println(ast)

	if evalMode {
		result, err := simpl.Eval(ast)
		if err != nil {
			return err
		}
		fmt.Println(result)
	}
	return nil
}
