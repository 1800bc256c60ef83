package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"github.com/mrchurches/SimpleSwap/internal/config"
	"github.com/mrchurches/SimpleSwap/internal/handler"
	"github.com/mrchurches/SimpleSwap/internal/logging"
	"github.com/mrchurches/SimpleSwap/internal/service"
	"github.com/mrchurches/SimpleSwap/internal/token"
)

// deployer seeds the registry's contract-style address derivation; poolAddr
// is the custody identity depositors and swappers approve as spender.
var (
	deployer = common.HexToAddress("0x00000000000000000000000000000000000000d0")
	poolAddr = common.HexToAddress("0x0000000000000000000000000000000000001337")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	app := fiber.New()
	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := token.NewRegistry(deployer)
	poolService := service.NewPoolService(logger, registry, poolAddr)
	poolHandler := handler.NewPoolHandler(logger, poolService)
	tokenHandler := handler.NewTokenHandler(logger, poolService)

	app.Post("/tokens", tokenHandler.Deploy())
	app.Post("/tokens/mint", tokenHandler.Mint())
	app.Post("/tokens/approve", tokenHandler.Approve())
	app.Get("/tokens/balance", tokenHandler.Balance())

	app.Get("/pool/address", poolHandler.Address())
	app.Post("/pool/liquidity/add", poolHandler.AddLiquidity())
	app.Post("/pool/liquidity/remove", poolHandler.RemoveLiquidity())
	app.Post("/pool/swap", poolHandler.Swap())
	app.Get("/pool/reserves", poolHandler.Reserves())
	app.Get("/pool/price", poolHandler.Price())
	app.Get("/pool/quote", poolHandler.Quote())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	<-shutdownCtx.Done()
	return nil
}
