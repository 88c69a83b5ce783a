package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "lrgen"
	app.Usage = "lexer and LR parser generation toolchain"
	app.Version = info.Version

	app.Commands = []cli.Command{tokensCommand, parseCommand, dumpCommand}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}
