// Package main is the entrypoint for amdcpuctl, the AMD CPU frequency
// scaling control tool.
package main

import "github.com/hwkit/amdctl/internal/cli/cpucli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cpucli.Execute(version)
}
