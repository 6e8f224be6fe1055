package main

import (
	"log"

	_ "github.com/lib/pq"
	"github.com/stpnv0/TicketGate/internal/app"
	"github.com/stpnv0/TicketGate/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
