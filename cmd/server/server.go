package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/config"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/handlers/pokebattle/v1alpha1"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/handlers/rest"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the battle service on a gRPC port and an HTTP port sharing one set of services.`,
	RunE:  runServer,
}

func init() {
	addConfigFlags(serverCmd)
	serverCmd.Flags().Int("port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().Int("http-port", 0, "HTTP server port (overrides config)")
	serverCmd.Flags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")
}

// addConfigFlags registers the flags every command that reads the config file shares
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().StringSlice("redis-addr", nil, "Redis addresses (overrides config; empty keeps battles in memory)")
}

// loadConfig applies the flags that were set on top of the file and defaults
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("port") {
		cfg.Server.GRPCPort, _ = flags.GetInt("port")
	}
	if flags.Changed("http-port") {
		cfg.Server.HTTPPort, _ = flags.GetInt("http-port")
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addrs, _ = flags.GetStringSlice("redis-addr")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.SetDefault(config.NewLogger(cfg.Logging, os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverFunc)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverFunc)),
		),
	)

	battleHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PokedexService: app.pokedex,
		BattleService:  app.battles,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle handler: %w", err)
	}
	v1alpha1.RegisterBattleServiceServer(srv, battleHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.BattleServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	gin.SetMode(gin.ReleaseMode)
	router, err := rest.NewRouter(&rest.Config{
		PokedexService: app.pokedex,
		BattleService:  app.battles,
		ReplayInterval: cfg.Battles.ReplayInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create http router: %w", err)
	}
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping...")
	case serveErr = <-errChan:
		slog.Error("server failed, shutting down", "error", serveErr)
	}

	healthServer.Shutdown()
	shutdown(srv, httpServer, cfg.Server.ShutdownTimeout)
	return serveErr
}

// shutdown drains both servers, forcing the gRPC server down when the budget runs out
func shutdown(srv *grpc.Server, httpServer *http.Server, budget time.Duration) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), budget)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

func recoverFunc(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic in grpc handler", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
