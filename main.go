package main

import (
	"context"
	"os"

	"github.com/Rakhulsr/go-shoppinglist/app/cmd"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := cmd.RunCli(context.Background(), log, os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
