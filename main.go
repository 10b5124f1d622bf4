package main

import "github.com/CodeAtlasHQ/atlas/cmd"

func main() {
	cmd.Execute()
}
