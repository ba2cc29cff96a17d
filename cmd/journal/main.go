package main

import (
	"context"
	"log"

	"github.com/Skyism/gratefulnessjar/internal/journal/cli"
	"github.com/Skyism/gratefulnessjar/internal/journal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
