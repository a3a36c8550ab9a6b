// Command preflow computes the maximum flow of a network read from a file or
// standard input with the concurrent preflow-push solver.
package main

import "github.com/katalvlaran/preflow/cmd/preflow/cmd"

func main() {
	cmd.Execute()
}
