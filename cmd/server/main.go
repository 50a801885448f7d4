// Command server runs the agricultural dataset generator HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heshanf/agridataset-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
