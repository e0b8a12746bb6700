package main

import (
	"log"

	"github.com/crossplay/backend/cmd/crossgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("crossgen: %v", err)
	}
}
