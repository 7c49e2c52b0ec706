package main

import (
	"os"

	"github.com/sunwei/siteconf/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:]))
}
