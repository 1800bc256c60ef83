package service

import (
	"io"
	"math/big"
	"testing"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mrchurches/SimpleSwap/internal/token"
	"github.com/mrchurches/SimpleSwap/pkg/cpmm"
)

var (
	deployer = common.HexToAddress("0x00000000000000000000000000000000000000d0")
	poolAddr = common.HexToAddress("0x0000000000000000000000000000000000001337")
	alice    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob      = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

const farFuture = int64(1 << 40)

func newTestService(t *testing.T) (*PoolService, common.Address, common.Address) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewPoolService(logger, token.NewRegistry(deployer), poolAddr)

	tokenA, err := svc.DeployToken("TKA")
	if err != nil {
		t.Fatalf("deploy TKA: %v", err)
	}
	tokenB, err := svc.DeployToken("TKB")
	if err != nil {
		t.Fatalf("deploy TKB: %v", err)
	}
	return svc, tokenA, tokenB
}

// fund mints and grants the pool a matching allowance.
func fund(t *testing.T, svc *PoolService, asset, owner common.Address, amount int64) {
	t.Helper()
	if err := svc.Mint(asset, owner, big.NewInt(amount)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := svc.Approve(asset, owner, big.NewInt(amount)); err != nil {
		t.Fatalf("approve: %v", err)
	}
}

func TestServiceLifecycle(t *testing.T) {
	t.Parallel()

	svc, tokenA, tokenB := newTestService(t)
	fund(t, svc, tokenA, alice, 100)
	fund(t, svc, tokenB, alice, 400)

	add, err := svc.AddLiquidity(alice, tokenA, tokenB, big.NewInt(100), big.NewInt(400), new(big.Int), new(big.Int), alice, farFuture)
	if err != nil {
		t.Fatalf("add liquidity: %v", err)
	}
	if add.MintedClaims.Int64() != 200 {
		t.Fatalf("minted = %s, want 200", add.MintedClaims)
	}

	price, err := svc.Price(tokenA, tokenB)
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	want := new(big.Int).Mul(big.NewInt(4), cpmm.Scale)
	if price.Cmp(want) != 0 {
		t.Fatalf("price = %s, want %s", price, want)
	}

	fund(t, svc, tokenA, bob, 10)
	swap, err := svc.Swap(bob, big.NewInt(10), new(big.Int), tokenA, tokenB, bob, farFuture)
	if err != nil {
		t.Fatalf("swap: %v", err)
	}
	if swap.AmountOut.Sign() <= 0 {
		t.Fatalf("swap output = %s, want > 0", swap.AmountOut)
	}
	balance, err := svc.Balance(tokenB, bob)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance.Cmp(swap.AmountOut) != 0 {
		t.Fatalf("bob tokenB balance = %s, want %s", balance, swap.AmountOut)
	}

	rem, err := svc.RemoveLiquidity(alice, tokenA, tokenB, add.MintedClaims, new(big.Int), new(big.Int), alice, farFuture)
	if err != nil {
		t.Fatalf("remove liquidity: %v", err)
	}
	if rem.BurnedClaims.Cmp(add.MintedClaims) != 0 {
		t.Fatalf("burned = %s, want %s", rem.BurnedClaims, add.MintedClaims)
	}
	ra, rb, err := svc.Reserves(tokenA, tokenB)
	if err != nil {
		t.Fatalf("reserves: %v", err)
	}
	if ra.Sign() != 0 || rb.Sign() != 0 {
		t.Fatalf("reserves after full redemption = %s/%s, want 0/0", ra, rb)
	}
}

func TestServiceUnknownToken(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	unknown := common.HexToAddress("0x00000000000000000000000000000000000000ee")

	if err := svc.Mint(unknown, alice, big.NewInt(1)); err != ErrUnknownToken {
		t.Fatalf("mint unknown: got %v", err)
	}
	if err := svc.Approve(unknown, alice, big.NewInt(1)); err != ErrUnknownToken {
		t.Fatalf("approve unknown: got %v", err)
	}
	if _, err := svc.Balance(unknown, alice); err != ErrUnknownToken {
		t.Fatalf("balance unknown: got %v", err)
	}
}

func TestServiceDeployValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	if _, err := svc.DeployToken(""); err != ErrEmptySymbol {
		t.Fatalf("empty symbol: got %v", err)
	}
}

func TestServiceSwapWithoutAllowanceFails(t *testing.T) {
	t.Parallel()

	svc, tokenA, tokenB := newTestService(t)
	fund(t, svc, tokenA, alice, 1000)
	fund(t, svc, tokenB, alice, 1000)
	if _, err := svc.AddLiquidity(alice, tokenA, tokenB, big.NewInt(1000), big.NewInt(1000), new(big.Int), new(big.Int), alice, farFuture); err != nil {
		t.Fatalf("add liquidity: %v", err)
	}

	// bob holds funds but never approved the pool.
	if err := svc.Mint(tokenA, bob, big.NewInt(100)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := svc.Swap(bob, big.NewInt(100), new(big.Int), tokenA, tokenB, bob, farFuture); err != cpmm.ErrTransferFailed {
		t.Fatalf("swap without allowance: got %v", err)
	}
}
