package main

import (
	"log"

	"github.com/somahealth/soma/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
