package service

import (
	"math/big"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mrchurches/SimpleSwap/internal/token"
	"github.com/mrchurches/SimpleSwap/pkg/cpmm"
)

// PoolService wires the pool engine to the token ledgers and logs the records
// each completed operation emits.
type PoolService struct {
	BaseService
	registry *token.Registry
	pool     *cpmm.Pool
}

// resolver hands the pool holder-bound collaborator views of the ledgers.
type resolver struct {
	registry *token.Registry
	pool     common.Address
}

func (r resolver) Token(asset common.Address) (cpmm.Token, bool) {
	l, ok := r.registry.Get(asset)
	if !ok {
		return nil, false
	}
	return l.Bound(r.pool), true
}

// NewPoolService constructs a PoolService holding custody under poolAddr.
func NewPoolService(logger *slog.Logger, registry *token.Registry, poolAddr common.Address) *PoolService {
	return &PoolService{
		BaseService: BaseService{logger: logger},
		registry:    registry,
		pool:        cpmm.NewPool(poolAddr, resolver{registry: registry, pool: poolAddr}),
	}
}

// Pool exposes the underlying engine for read access.
func (s *PoolService) Pool() *cpmm.Pool { return s.pool }

// PoolAddress returns the pool's custody identity, the spender callers must
// approve before depositing or swapping.
func (s *PoolService) PoolAddress() common.Address { return s.pool.Address() }

// DeployToken allocates a fresh in-memory asset ledger.
func (s *PoolService) DeployToken(symbol string) (common.Address, error) {
	if symbol == "" {
		return common.Address{}, ErrEmptySymbol
	}
	l := s.registry.Deploy(symbol)
	s.logger.Info("token deployed", "symbol", symbol, "address", l.Address().Hex())
	return l.Address(), nil
}

// Mint credits test funds to an account.
func (s *PoolService) Mint(asset, to common.Address, amount *big.Int) error {
	l, ok := s.registry.Get(asset)
	if !ok {
		return ErrUnknownToken
	}
	l.Mint(to, amount)
	s.logger.Debug("minted", "asset", asset.Hex(), "to", to.Hex(), "amount", amount.String())
	return nil
}

// Approve grants the pool an allowance over owner's balance of asset.
func (s *PoolService) Approve(asset, owner common.Address, amount *big.Int) error {
	l, ok := s.registry.Get(asset)
	if !ok {
		return ErrUnknownToken
	}
	l.Approve(owner, s.pool.Address(), amount)
	s.logger.Debug("approved", "asset", asset.Hex(), "owner", owner.Hex(), "amount", amount.String())
	return nil
}

// Balance returns owner's balance of asset.
func (s *PoolService) Balance(asset, owner common.Address) (*big.Int, error) {
	l, ok := s.registry.Get(asset)
	if !ok {
		return nil, ErrUnknownToken
	}
	return l.BalanceOf(owner), nil
}

// AddLiquidity deposits into the pool and logs the emitted record.
func (s *PoolService) AddLiquidity(caller, tokenA, tokenB common.Address, amountADesired, amountBDesired, amountAMin, amountBMin *big.Int, recipient common.Address, deadline int64) (*cpmm.AddLiquidityRecord, error) {
	rec, err := s.pool.AddLiquidity(caller, tokenA, tokenB, amountADesired, amountBDesired, amountAMin, amountBMin, recipient, deadline)
	if err != nil {
		return nil, err
	}
	s.logger.Info("liquidity added",
		"caller", rec.Caller.Hex(), "tokenA", rec.TokenA.Hex(), "tokenB", rec.TokenB.Hex(),
		"amountA", rec.AmountA.String(), "amountB", rec.AmountB.String(), "minted", rec.MintedClaims.String())
	return rec, nil
}

// RemoveLiquidity redeems claims from the pool and logs the emitted record.
func (s *PoolService) RemoveLiquidity(caller, tokenA, tokenB common.Address, claimAmount, amountAMin, amountBMin *big.Int, recipient common.Address, deadline int64) (*cpmm.RemoveLiquidityRecord, error) {
	rec, err := s.pool.RemoveLiquidity(caller, tokenA, tokenB, claimAmount, amountAMin, amountBMin, recipient, deadline)
	if err != nil {
		return nil, err
	}
	s.logger.Info("liquidity removed",
		"caller", rec.Caller.Hex(), "tokenA", rec.TokenA.Hex(), "tokenB", rec.TokenB.Hex(),
		"amountA", rec.AmountA.String(), "amountB", rec.AmountB.String(), "burned", rec.BurnedClaims.String())
	return rec, nil
}

// Swap trades an exact input through the pool and logs the emitted record.
func (s *PoolService) Swap(caller common.Address, amountIn, amountOutMin *big.Int, tokenIn, tokenOut, recipient common.Address, deadline int64) (*cpmm.SwapRecord, error) {
	rec, err := s.pool.SwapExactIn(caller, amountIn, amountOutMin, tokenIn, tokenOut, recipient, deadline)
	if err != nil {
		return nil, err
	}
	s.logger.Info("swapped",
		"caller", rec.Caller.Hex(), "tokenIn", rec.TokenIn.Hex(), "tokenOut", rec.TokenOut.Hex(),
		"amountIn", rec.AmountIn.String(), "amountOut", rec.AmountOut.String())
	return rec, nil
}

// Reserves returns the pair-ordered reserves.
func (s *PoolService) Reserves(tokenA, tokenB common.Address) (*big.Int, *big.Int, error) {
	return s.pool.Reserves(tokenA, tokenB)
}

// Price returns the scaled spot price of tokenA in terms of tokenB.
func (s *PoolService) Price(tokenA, tokenB common.Address) (*big.Int, error) {
	return s.pool.Price(tokenA, tokenB)
}

// Quote prices amountIn against explicit reserves without touching state.
func (s *PoolService) Quote(reserveIn, reserveOut, amountIn *big.Int) (*big.Int, error) {
	return cpmm.GetAmountOut(reserveIn, reserveOut, amountIn)
}
