package main

import (
	"fmt"

	"github.com/juanFRANvelilla/backendTFG/config"
	"github.com/juanFRANvelilla/backendTFG/rest"
)

func main() {
	fmt.Println("Starting debt ledger service ...")
	cfg := config.Load()
	a := rest.App{}
	a.Init(cfg)
	a.Run(cfg.ListenAddr)
}
