package cpmm

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var (
	tknA     = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	tknB     = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	tknOther = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	alice    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob      = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	custody  = common.HexToAddress("0x0000000000000000000000000000000000000abc")
)

// farFuture is a deadline no test clock ever passes.
const farFuture = int64(1 << 40)

// fakeToken is an in-memory collaborator: Transfer spends the pool's own
// balance, TransferFrom spends the named holder's balance. The fail switches
// force the boolean failure paths.
type fakeToken struct {
	pool             common.Address
	balances         map[common.Address]*big.Int
	failTransfer     bool
	failTransferFrom bool
}

func newFakeToken(pool common.Address) *fakeToken {
	return &fakeToken{pool: pool, balances: map[common.Address]*big.Int{}}
}

func (f *fakeToken) mint(to common.Address, amount int64) {
	f.credit(to, big.NewInt(amount))
}

func (f *fakeToken) credit(to common.Address, amount *big.Int) {
	b := f.balances[to]
	if b == nil {
		b = new(big.Int)
		f.balances[to] = b
	}
	b.Add(b, amount)
}

func (f *fakeToken) balance(owner common.Address) *big.Int {
	if b := f.balances[owner]; b != nil {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (f *fakeToken) move(from, to common.Address, amount *big.Int) bool {
	b := f.balances[from]
	if b == nil || b.Cmp(amount) < 0 {
		return false
	}
	b.Sub(b, amount)
	f.credit(to, amount)
	return true
}

func (f *fakeToken) Transfer(to common.Address, amount *big.Int) bool {
	if f.failTransfer {
		return false
	}
	return f.move(f.pool, to, amount)
}

func (f *fakeToken) TransferFrom(from, to common.Address, amount *big.Int) bool {
	if f.failTransferFrom {
		return false
	}
	return f.move(from, to, amount)
}

type fakeResolver map[common.Address]*fakeToken

func (r fakeResolver) Token(asset common.Address) (Token, bool) {
	t, ok := r[asset]
	return t, ok
}

// newTestPool returns an empty pool plus the collaborators for tknA and tknB.
func newTestPool() (*Pool, *fakeToken, *fakeToken) {
	ta := newFakeToken(custody)
	tb := newFakeToken(custody)
	p := NewPool(custody, fakeResolver{tknA: ta, tknB: tb})
	return p, ta, tb
}

// seedPool funds alice and performs a first deposit of (amountA, amountB).
func seedPool(t *testing.T, p *Pool, ta, tb *fakeToken, amountA, amountB int64) *AddLiquidityRecord {
	t.Helper()
	ta.mint(alice, amountA)
	tb.mint(alice, amountB)
	rec, err := p.AddLiquidity(alice, tknA, tknB, big.NewInt(amountA), big.NewInt(amountB), nil0(), nil0(), alice, farFuture)
	if err != nil {
		t.Fatalf("seed deposit: %v", err)
	}
	return rec
}

func nil0() *big.Int { return new(big.Int) }

func TestPoolStartsEmptyAndUnbound(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPool()

	if got := p.TotalClaims(); got.Sign() != 0 {
		t.Fatalf("fresh pool claims = %s, want 0", got)
	}
	a, b := p.Tokens()
	if a != (common.Address{}) || b != (common.Address{}) {
		t.Fatalf("fresh pool bound to %s/%s", a.Hex(), b.Hex())
	}
	if _, _, err := p.Reserves(tknA, tknB); err != ErrInvalidPair {
		t.Fatalf("Reserves on unbound pool: got %v, want ErrInvalidPair", err)
	}
}

func TestReservesOrientation(t *testing.T) {
	t.Parallel()

	p, ta, tb := newTestPool()
	seedPool(t, p, ta, tb, 100, 400)

	ra, rb, err := p.Reserves(tknA, tknB)
	if err != nil {
		t.Fatalf("Reserves: %v", err)
	}
	if ra.Int64() != 100 || rb.Int64() != 400 {
		t.Fatalf("forward reserves = %s/%s, want 100/400", ra, rb)
	}

	rb, ra, err = p.Reserves(tknB, tknA)
	if err != nil {
		t.Fatalf("Reserves reversed: %v", err)
	}
	if rb.Int64() != 400 || ra.Int64() != 100 {
		t.Fatalf("reversed reserves = %s/%s, want 400/100", rb, ra)
	}

	if _, _, err := p.Reserves(tknA, tknOther); err != ErrInvalidPair {
		t.Fatalf("mismatched pair: got %v, want ErrInvalidPair", err)
	}
}

func TestClaimBalanceTracksRecipient(t *testing.T) {
	t.Parallel()

	p, ta, tb := newTestPool()
	rec := seedPool(t, p, ta, tb, 100, 400)

	if got := p.ClaimBalance(alice); got.Cmp(rec.MintedClaims) != 0 {
		t.Fatalf("alice claims = %s, want %s", got, rec.MintedClaims)
	}
	if got := p.ClaimBalance(bob); got.Sign() != 0 {
		t.Fatalf("bob claims = %s, want 0", got)
	}
	if got := p.TotalClaims(); got.Cmp(rec.MintedClaims) != 0 {
		t.Fatalf("total claims = %s, want %s", got, rec.MintedClaims)
	}
}

func TestDeadlineCheckedAtEntry(t *testing.T) {
	t.Parallel()

	p, ta, tb := newTestPool()
	ta.mint(alice, 1000)
	tb.mint(alice, 1000)

	frozen := time.Unix(5_000, 0)
	p.now = func() time.Time { return frozen }

	past := frozen.Unix() - 1
	if _, err := p.AddLiquidity(alice, tknA, tknB, big.NewInt(10), big.NewInt(10), nil0(), nil0(), alice, past); err != ErrExpired {
		t.Fatalf("AddLiquidity past deadline: got %v, want ErrExpired", err)
	}
	if _, err := p.RemoveLiquidity(alice, tknA, tknB, big.NewInt(1), nil0(), nil0(), alice, past); err != ErrExpired {
		t.Fatalf("RemoveLiquidity past deadline: got %v, want ErrExpired", err)
	}
	if _, err := p.SwapExactIn(alice, big.NewInt(1), nil0(), tknA, tknB, alice, past); err != ErrExpired {
		t.Fatalf("SwapExactIn past deadline: got %v, want ErrExpired", err)
	}

	// Nothing mutated.
	if got := p.TotalClaims(); got.Sign() != 0 {
		t.Fatalf("claims after expired calls = %s, want 0", got)
	}
	if got := ta.balance(alice); got.Int64() != 1000 {
		t.Fatalf("alice tokenA balance after expired calls = %s, want 1000", got)
	}
}
