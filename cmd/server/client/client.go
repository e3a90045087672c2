// Package client provides commands that call the BattleService over gRPC
package client

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/errors"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/handlers/pokebattle/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the battle service",
	Long:  `Client commands make real gRPC requests against a running battle server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the raw response as JSON")

	ClientCmd.AddCommand(getPokemonCmd)
	ClientCmd.AddCommand(simulateCmd)
	ClientCmd.AddCommand(getBattleCmd)
	ClientCmd.AddCommand(listBattlesCmd)
}

// createBattleClient creates a battle service client
func createBattleClient() (v1alpha1.BattleServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewBattleServiceClient(conn), cleanup, nil
}

// writeJSON prints resp as indented protojson
func writeJSON(w io.Writer, resp *structpb.Struct) error {
	marshaler := protojson.MarshalOptions{
		Indent:    "  ",
		Multiline: true,
	}
	b, err := marshaler.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// render prints resp as JSON when requested, otherwise through the command's text printer
func render(resp *structpb.Struct, text func(io.Writer, map[string]any)) error {
	if jsonOutput {
		return writeJSON(os.Stdout, resp)
	}
	text(os.Stdout, resp.AsMap())
	return nil
}

// rpcError restores the server's error code and message from a gRPC status
func rpcError(action string, err error) error {
	return fmt.Errorf("%s: %w", action, errors.FromGRPCError(err))
}
