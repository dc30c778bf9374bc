// Command tiepath solves heading-aware mazes from text files and prints the
// minimal cost and the number of cells on any minimal-cost path.
//
//	tiepath solve maze.txt
//	tiepath solve --frontier heap --overlay maze.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
