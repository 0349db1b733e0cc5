package main

import (
	"os"

	"github.com/rngvrf/rngvrf-deploy/cmd/rngvrf"
)

func main() {
	os.Exit(rngvrf.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
