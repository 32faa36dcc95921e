// Package main provides the dmrctl command-line entry point, grounded
// on junjiewwang-perf-analysis/cmd/cli/cmd's cobra wiring: main does
// nothing but call cmd.Execute().
package main

import "github.com/methylgraph/dmrcore/cmd/dmrctl/cmd"

func main() {
	cmd.Execute()
}
