// Command alignkit aligns and searches biological sequences.
package main

import "github.com/bioseq/alignkit/cmd"

func main() {
	cmd.Execute()
}
