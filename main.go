package main

import "github.com/openmotion/bit2header/cmd"

// main is the entry point of the bit2header CLI application.
// It executes the root command which handles argument parsing and exit codes.
func main() {
	cmd.Execute()
}
