package main

import (
	"os"

	"ekey-bionyx/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
