package main

import (
	"github.com/somahealth/soma/pkg/cli"
)

func main() {
	cli.Run()
}
