package token

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Registry holds the deployed asset ledgers, keyed by address. Addresses are
// derived the way contract addresses are: from a deployer identity and a
// monotonically increasing nonce.
type Registry struct {
	mu       sync.Mutex
	deployer common.Address
	nonce    uint64
	ledgers  map[common.Address]*Ledger
}

// NewRegistry creates an empty registry deploying under the given identity.
func NewRegistry(deployer common.Address) *Registry {
	return &Registry{
		deployer: deployer,
		ledgers:  map[common.Address]*Ledger{},
	}
}

// Deploy allocates a fresh ledger for symbol and returns it.
func (r *Registry) Deploy(symbol string) *Ledger {
	r.mu.Lock()
	defer r.mu.Unlock()
	addr := crypto.CreateAddress(r.deployer, r.nonce)
	r.nonce++
	l := newLedger(addr, symbol)
	r.ledgers[addr] = l
	return l
}

// Get returns the ledger for an asset address.
func (r *Registry) Get(asset common.Address) (*Ledger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.ledgers[asset]
	return l, ok
}
