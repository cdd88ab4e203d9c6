package main

import "github.com/slate-orm/slate/cmd/slate/commands"

func main() {
	commands.Execute()
}
