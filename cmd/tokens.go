package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/lrgen/examples/simpl"
	"github.com/arr-ai/lrgen/lexer"
)

var inFile string
var verboseMode bool

var tokensCommand = cli.Command{
	Name:    "tokens",
	Aliases: []string{"t"},
	Usage:   "Lex an input file with the sample simpl language and print the token stream",
	Action:  tokens,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "input",
			Usage:       "input file (default stdin)",
			Required:    false,
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Required:    false,
			Destination: &verboseMode,
		},
	},
}

func loadInput() (*lexer.Scanner, error) {
	switch inFile {
	case "", "-":
		buf, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return lexer.NewScanner(string(buf)), nil
	default:
		buf, err := ioutil.ReadFile(inFile)
		if err != nil {
			return nil, err
		}
		return lexer.NewScannerWithFilename(string(buf), inFile), nil
	}
}

func tokens(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	src, err := loadInput()
	if err != nil {
		return err
	}

	lx := simpl.Lang().Lexer(src)
	for {
		tok, err := lx.Next()
		if err != nil {
			return err
		}
		fmt.Println(tok)
		if tok.IsEOF() {
			return nil
		}
	}
}
