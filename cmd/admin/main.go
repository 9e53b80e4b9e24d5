package main

import (
	"context"
	"log"
	"os"

	"github.com/reelvault/reelvault/internal/admincli"
	"github.com/reelvault/reelvault/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := admincli.NewApp(cfg)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

}
