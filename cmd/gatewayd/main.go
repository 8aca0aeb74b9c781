package main

import (
	"github.com/mchmarny/gemini-gateway/pkg/cli"
)

func main() {
	cli.Execute()
}
