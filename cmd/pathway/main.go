package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pathway",
		Short: "A minimal HTTP/1.1 server with an ordered pattern router",
		Long: `Pathway is a minimal HTTP/1.1 server.

Every connection carries a single request, which is routed by
an ordered list of path patterns, e.g. /echo/*text or /users/:id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
