package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/service"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/transport"
)

type config struct {
	Coin              model.Coin    `long:"coin" env:"ADDRINDEX_COIN" description:"coin name" default:"MANGA"`
	Network           model.Network `long:"network" env:"ADDRINDEX_NETWORK" description:"network profile" choice:"mainnet" choice:"testnet" choice:"regtest" default:"mainnet"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"ADDRINDEX_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	RPCURL            string        `long:"rpc-url" env:"ADDRINDEX_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser           string        `long:"rpc-user" env:"ADDRINDEX_RPC_USER" description:"node RPC username"`
	RPCPassword       string        `long:"rpc-password" env:"ADDRINDEX_RPC_PASSWORD" description:"node RPC password"`
	RPCRateLimit      int           `long:"rpc-rate-limit" env:"ADDRINDEX_RPC_RATE_LIMIT" description:"node RPC requests per second, 0 for unlimited" default:"0"`
	TxFetchWorkers    int           `long:"tx-fetch-workers" env:"ADDRINDEX_TX_FETCH_WORKERS" description:"concurrent transaction fetches per request" default:"16"`
	Addr              string        `long:"addr" env:"ADDRINDEX_ADDR" description:"REST and metrics listen address" default:":8001"`
	GRPCAddr          string        `long:"grpc-addr" env:"ADDRINDEX_GRPC_ADDR" description:"gRPC listen address" default:":8000"`
	PProf             bool          `long:"pprof" env:"ADDRINDEX_PPROF" description:"expose /debug/pprof"`
	StartupRetries    int           `long:"startup-retries" env:"ADDRINDEX_STARTUP_RETRIES" description:"ClickHouse ping attempts before giving up" default:"10"`
	StartupRetryDelay time.Duration `long:"startup-retry-delay" env:"ADDRINDEX_STARTUP_RETRY_DELAY" description:"delay between ClickHouse ping attempts" default:"3s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("address index api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := bitcoin.ParamsForNetwork(cfg.Network)
	if err != nil {
		return err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()
	err = clock.Retry(ctx, cfg.StartupRetries, cfg.StartupRetryDelay, func(ctx context.Context) error {
		pingErr := repo.Ping(ctx)
		if pingErr != nil {
			logger.Warn("clickhouse not ready", zap.Error(pingErr))
		}
		return pingErr
	})
	if err != nil {
		return fmt.Errorf("wait for clickhouse: %w", err)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	node := bitcoin.NewNodeClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network), cfg.RPCRateLimit)

	statusService := service.NewStatusAggregator(repo, node, cfg.Coin, params.Network)
	restHandler := transport.NewRESTHandler(
		statusService,
		service.NewUtxoEnricher(repo, cfg.Coin, params.Network),
		service.NewTransactionFanout(repo, node, cfg.Coin, params.Network, cfg.TxFetchWorkers),
		bitcoin.NewAddressCodec(params),
	)

	grpcServer, err := startGRPCServer(ctx, cfg.GRPCAddr, transport.NewExplorerHandler(statusService), logger)
	if err != nil {
		return err
	}
	defer grpcServer.GracefulStop()

	gw := gwruntime.NewServeMux(gwruntime.WithErrorHandler(transport.GatewayErrorHandler))
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, cfg.GRPCAddr, opts); err != nil {
		return fmt.Errorf("register explorer handler: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := transport.NewRouter(restHandler, gw, logger.Named("rest"), metrics.NewHTTPAPI())
	if cfg.PProf {
		pprof.Register(router)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.Addr),
		zap.String("network", string(params.Network)),
		zap.String("coin", string(cfg.Coin)),
	)
	return serveHTTP(ctx, s, socketListener(cfg.Addr), logger)
}

// serveHTTP serves until ctx is done and returns only after Shutdown has
// drained in-flight requests, so callers may close what handlers depend on.
func serveHTTP(ctx context.Context, s *http.Server, listen func() (net.Listener, error), logger *zap.Logger) error {
	socket, err := listen()
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	if err := s.Serve(socket); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	<-shutdownDone
	return nil
}

func socketListener(addr string) func() (net.Listener, error) {
	return func() (net.Listener, error) {
		return net.Listen("tcp", addr)
	}
}

func startGRPCServer(
	ctx context.Context,
	addr string,
	explorer blockinsight7000v1.ExplorerServiceServer,
	logger *zap.Logger,
) (*grpc.Server, error) {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, explorer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		logger.Info("Starting GRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("GRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()
	return grpcServer, nil
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(cfg, nil)
}
