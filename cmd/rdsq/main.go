// Package main is the entry point for the rdsq binary.
package main

import (
	"os"

	"rdsq/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
