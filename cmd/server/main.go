// Package main is the entry point for the battle server and its client commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harsheetasys/pokemon-battle-simulation/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pokemon-battle",
	Short: "Pokémon data and battle simulation server",
	Long: `Serves resolved Pokémon profiles from PokeAPI and simulates battles between them
over gRPC and HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
