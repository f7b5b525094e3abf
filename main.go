package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/leakhound/leakhound/commands"
)

func main() {
	_, err := flags.Parse(&commands.Leakhound)
	if err != nil {
		os.Exit(1)
	}
}
