package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/mengzhuo/ntpts"
)

func main() {
	defer exitwithstatus.Handler()

	cfg, err := ntpts.ReadConfig(os.LookupEnv)
	if err != nil {
		exitwithstatus.Message("config: %s", err)
	}

	r, err := ntpts.New(cfg, os.Stdout)
	if err != nil {
		exitwithstatus.Message("init: %s", err)
	}

	err = r.Run(os.Args[1:])
	if err != nil {
		exitwithstatus.Message("%s", err)
	}
}
