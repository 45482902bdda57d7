package main

import (
	"fmt"
	"os"

	"github.com/nmaffly/portfolio-assistant/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfoliod",
		Short: "Portfolio assistant daemon",
		Long:  "Portfolio assistant daemon for running the chat API server",
	}

	rootCmd.AddCommand(cli.ServeCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
