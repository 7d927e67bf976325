package main

import (
	"context"
	"log"

	"github.com/uniconnect/uniconnect-cli/internal/client/cli"
	"github.com/uniconnect/uniconnect-cli/internal/client/config"
	"github.com/uniconnect/uniconnect-cli/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
