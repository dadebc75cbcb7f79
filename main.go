package main

import (
	"github.com/seadog-run/seadog/cmd"
)

func main() {
	cmd.Execute()
}
