package main

import (
	"github.com/davput/davput/cmd"
	"github.com/davput/davput/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
