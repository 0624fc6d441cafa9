// Package main is the registrar CLI entrypoint.
package main

import (
	"github.com/leapstack-labs/registrar/internal/cli"
)

func main() {
	cli.Execute()
}
