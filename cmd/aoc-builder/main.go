package main

import (
	"aocbuilder/cmd/aoc-builder/commands"
	"context"
)

func main() {
	commands.ExecuteContext(context.Background())
}
