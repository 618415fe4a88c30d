// Package main is the entrypoint for amdgpuctl, the AMD GPU power
// management control tool.
package main

import "github.com/hwkit/amdctl/internal/cli/gpucli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	gpucli.Execute(version)
}
