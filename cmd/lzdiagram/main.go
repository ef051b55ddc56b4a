// Package main is the entry point for the lzdiagram CLI.
//
// lzdiagram renders the compiled-in landing zone architecture diagrams
// (GCP, AWS and Azure) to PNG or JPEG files without going through
// Terraform.
//
// For detailed usage information, run:
//
//	lzdiagram --help
package main

import (
	"fmt"
	"os"

	"github.com/ankek/terraform-provider-landingzone/cmd/lzdiagram/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
