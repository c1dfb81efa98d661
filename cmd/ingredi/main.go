package main

import (
	"github.com/NVIDIA/ingredi/pkg/cli"
)

func main() {
	cli.Execute()
}
