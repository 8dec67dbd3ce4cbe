package main

import (
	"pcmviz/pkg/commands"
)

func main() {
	commands.Execute()
}
