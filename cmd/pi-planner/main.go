package main

import (
	"github.com/andrescamacho/pi-planner/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
