// Package token provides an in-memory fungible-asset ledger implementing the
// transfer collaborator the pool engine depends on, plus the mint/approve
// scaffolding the API exposes for test funding.
package token

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Ledger tracks balances and allowances for a single asset.
type Ledger struct {
	mu         sync.Mutex
	addr       common.Address
	symbol     string
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

func newLedger(addr common.Address, symbol string) *Ledger {
	return &Ledger{
		addr:       addr,
		symbol:     symbol,
		balances:   map[common.Address]*big.Int{},
		allowances: map[common.Address]map[common.Address]*big.Int{},
	}
}

// Address returns the asset's address.
func (l *Ledger) Address() common.Address { return l.addr }

// Symbol returns the asset's display symbol.
func (l *Ledger) Symbol() string { return l.symbol }

// Mint credits freshly created units to `to`. Test/demo scaffolding; a real
// asset backend would not expose this.
func (l *Ledger) Mint(to common.Address, amount *big.Int) {
	if amount == nil || amount.Sign() <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(to, amount)
}

// BalanceOf returns owner's balance.
func (l *Ledger) BalanceOf(owner common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if b := l.balances[owner]; b != nil {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// Approve sets spender's allowance over owner's balance.
func (l *Ledger) Approve(owner, spender common.Address, amount *big.Int) {
	if amount == nil || amount.Sign() < 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	m := l.allowances[owner]
	if m == nil {
		m = map[common.Address]*big.Int{}
		l.allowances[owner] = m
	}
	m[spender] = new(big.Int).Set(amount)
}

// Allowance returns what spender may move out of owner's balance.
func (l *Ledger) Allowance(owner, spender common.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if a := l.allowances[owner][spender]; a != nil {
		return new(big.Int).Set(a)
	}
	return new(big.Int)
}

// transfer moves amount from -> to, reporting false (and moving nothing) when
// the balance does not cover it.
func (l *Ledger) transfer(from, to common.Address, amount *big.Int) bool {
	if amount == nil || amount.Sign() < 0 {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	b := l.balances[from]
	if b == nil || b.Cmp(amount) < 0 {
		return false
	}
	b.Sub(b, amount)
	l.credit(to, amount)
	return true
}

// spendAllowance consumes spender's allowance over owner's balance, reporting
// false when the allowance does not cover amount.
func (l *Ledger) spendAllowance(owner, spender common.Address, amount *big.Int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	a := l.allowances[owner][spender]
	if a == nil || a.Cmp(amount) < 0 {
		return false
	}
	a.Sub(a, amount)
	return true
}

func (l *Ledger) credit(to common.Address, amount *big.Int) {
	b := l.balances[to]
	if b == nil {
		b = new(big.Int)
		l.balances[to] = b
	}
	b.Add(b, amount)
}

// Account is a holder-bound view of a Ledger satisfying the pool engine's
// collaborator contract: Transfer spends the holder's own balance and
// TransferFrom spends an allowance granted to the holder.
type Account struct {
	ledger *Ledger
	holder common.Address
}

// Bound returns holder's view of the ledger.
func (l *Ledger) Bound(holder common.Address) *Account {
	return &Account{ledger: l, holder: holder}
}

// Transfer moves amount from the bound holder to `to`.
func (a *Account) Transfer(to common.Address, amount *big.Int) bool {
	return a.ledger.transfer(a.holder, to, amount)
}

// TransferFrom moves amount from `from` to `to` against an allowance granted
// by `from` to the bound holder. The allowance is consumed before the balance
// moves; a failed balance move restores it.
func (a *Account) TransferFrom(from, to common.Address, amount *big.Int) bool {
	if amount == nil || amount.Sign() < 0 {
		return false
	}
	if !a.ledger.spendAllowance(from, a.holder, amount) {
		return false
	}
	if !a.ledger.transfer(from, to, amount) {
		a.ledger.mu.Lock()
		a.ledger.allowances[from][a.holder].Add(a.ledger.allowances[from][a.holder], amount)
		a.ledger.mu.Unlock()
		return false
	}
	return true
}
