package main

import (
	"FormationImporter/internal/cli"
)

func main() {
	cli.Execute()
}
