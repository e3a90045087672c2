package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	seed  uint64
	limit int
)

var getPokemonCmd = &cobra.Command{
	Use:   "get-pokemon [name]",
	Short: "Get a resolved pokemon profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetPokemon,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [pokemon1] [pokemon2]",
	Short: "Simulate a battle between two pokemon",
	Args:  cobra.ExactArgs(2),
	RunE:  runSimulate,
}

var getBattleCmd = &cobra.Command{
	Use:   "get-battle [battle-id]",
	Short: "Get a stored battle",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetBattle,
}

var listBattlesCmd = &cobra.Command{
	Use:   "list-battles",
	Short: "List the most recent battles",
	Args:  cobra.NoArgs,
	RunE:  runListBattles,
}

func init() {
	simulateCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible battle (0 = random)")
	listBattlesCmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of battles")
}

func runGetPokemon(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting pokemon '%s' from %s...", args[0], serverAddr)

	resp, err := client.GetPokemon(ctx, wrapperspb.String(args[0]))
	if err != nil {
		return rpcError("failed to get pokemon", err)
	}

	return render(resp, printPokemon)
}

func runSimulate(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fields := map[string]any{"pokemon1": args[0], "pokemon2": args[1]}
	if seed != 0 {
		fields["seed"] = float64(seed)
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	log.Printf("Simulating %s vs %s on %s...", args[0], args[1], serverAddr)

	resp, err := client.SimulateBattle(ctx, req)
	if err != nil {
		return rpcError("failed to simulate battle", err)
	}

	return render(resp, printBattleResult)
}

func runGetBattle(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetBattle(ctx, wrapperspb.String(args[0]))
	if err != nil {
		return rpcError("failed to get battle", err)
	}

	return render(resp, printBattleRecord)
}

func runListBattles(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{"limit": limit})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.ListBattles(ctx, req)
	if err != nil {
		return rpcError("failed to list battles", err)
	}

	return render(resp, printBattleList)
}
