package main

import (
	"context"
	"log"
	"os"

	"github.com/konarr/konarr-go/internal/buildinfo"
	"github.com/konarr/konarr-go/internal/client/cli"
	"github.com/konarr/konarr-go/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
