package main

import (
	"github.com/NVIDIA/benchmark-results/pkg/cli"
)

func main() {
	cli.Execute()
}
