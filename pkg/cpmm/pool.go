package cpmm

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Token is the external transfer collaborator for one asset. The pool only
// observes the boolean result: false aborts the surrounding operation with
// ErrTransferFailed. Implementations are untrusted and may re-enter the pool;
// the per-pool mutex serializes such calls.
type Token interface {
	// Transfer moves amount from the pool's own holdings to `to`.
	Transfer(to common.Address, amount *big.Int) bool
	// TransferFrom moves amount from `from` to `to` against an allowance
	// granted to the pool.
	TransferFrom(from, to common.Address, amount *big.Int) bool
}

// TokenResolver looks up the transfer collaborator for an asset address.
type TokenResolver interface {
	Token(asset common.Address) (Token, bool)
}

// maxReserve caps each reserve at the uint112 range used by Uniswap V2 pair
// storage. Exceeding it fails with ErrArithmetic.
var maxReserve = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))

// Pool is a single two-token constant-product pool. The token pair binds on
// the first successful deposit and is immutable afterwards; reserves and the
// claim supply evolve only through AddLiquidity, RemoveLiquidity and
// SwapExactIn. The zero reserves / zero supply states coincide: the pool is
// either fully empty or fully initialized.
type Pool struct {
	mu sync.Mutex

	addr   common.Address // custody identity used in collaborator calls
	tokens TokenResolver

	tokenA common.Address
	tokenB common.Address

	reserveA    *big.Int
	reserveB    *big.Int
	totalClaims *big.Int
	claims      map[common.Address]*big.Int

	now func() time.Time
}

// NewPool creates an empty pool. addr is the identity the pool presents to
// the transfer collaborators; tokens resolves asset addresses to them.
func NewPool(addr common.Address, tokens TokenResolver) *Pool {
	return &Pool{
		addr:        addr,
		tokens:      tokens,
		reserveA:    new(big.Int),
		reserveB:    new(big.Int),
		totalClaims: new(big.Int),
		claims:      map[common.Address]*big.Int{},
		now:         time.Now,
	}
}

// Address returns the pool's custody identity.
func (p *Pool) Address() common.Address { return p.addr }

// Tokens returns the bound pair. Both are zero while the pool has never been
// deposited into.
func (p *Pool) Tokens() (common.Address, common.Address) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tokenA, p.tokenB
}

// Reserves returns the reserves ordered to match the given pair, or
// ErrInvalidPair if the pair does not match the bound tokens in either order.
func (p *Pool) Reserves(tokenA, tokenB common.Address) (*big.Int, *big.Int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ra, rb, err := p.orient(tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}
	return new(big.Int).Set(ra), new(big.Int).Set(rb), nil
}

// TotalClaims returns the outstanding claim-token supply.
func (p *Pool) TotalClaims() *big.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return new(big.Int).Set(p.totalClaims)
}

// ClaimBalance returns holder's claim-token balance.
func (p *Pool) ClaimBalance(holder common.Address) *big.Int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b := p.claims[holder]; b != nil {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// bound reports whether the token pair has been set by a first deposit.
func (p *Pool) bound() bool {
	return p.tokenA != (common.Address{})
}

// orient returns pointers to the live reserve values ordered to match
// (tokenA, tokenB). Mutating through the returned values updates pool state.
func (p *Pool) orient(tokenA, tokenB common.Address) (*big.Int, *big.Int, error) {
	switch {
	case tokenA == p.tokenA && tokenB == p.tokenB:
		return p.reserveA, p.reserveB, nil
	case tokenA == p.tokenB && tokenB == p.tokenA:
		return p.reserveB, p.reserveA, nil
	default:
		return nil, nil, ErrInvalidPair
	}
}

// token resolves the collaborator for an asset.
func (p *Pool) token(asset common.Address) (Token, error) {
	t, ok := p.tokens.Token(asset)
	if !ok {
		return nil, ErrTransferFailed
	}
	return t, nil
}

// checkDeadline fails with ErrExpired when the current time is past deadline
// (unix seconds). Checked once at operation entry.
func (p *Pool) checkDeadline(deadline int64) error {
	if p.now().Unix() > deadline {
		return ErrExpired
	}
	return nil
}

// checkedReserve validates a prospective reserve value against the
// non-negative uint112 range.
func checkedReserve(v *big.Int) error {
	if v.Sign() < 0 || v.Cmp(maxReserve) > 0 {
		return ErrArithmetic
	}
	return nil
}

// mintClaims credits freshly minted claims to recipient.
func (p *Pool) mintClaims(recipient common.Address, amount *big.Int) {
	p.totalClaims.Add(p.totalClaims, amount)
	b := p.claims[recipient]
	if b == nil {
		b = new(big.Int)
		p.claims[recipient] = b
	}
	b.Add(b, amount)
}

// burnClaims removes amount from holder's balance and the total supply. The
// caller must have verified the balance covers amount.
func (p *Pool) burnClaims(holder common.Address, amount *big.Int) {
	p.claims[holder].Sub(p.claims[holder], amount)
	p.totalClaims.Sub(p.totalClaims, amount)
}
