package cpmm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// nonNeg reports whether v is a usable unsigned amount.
func nonNeg(v *big.Int) bool {
	return v != nil && v.Sign() >= 0
}

// AddLiquidity deposits up to (amountADesired, amountBDesired) of the pair
// and mints claim tokens to recipient.
//
// The first deposit into an empty, unbound pool binds the token pair, takes
// both desired amounts in full and mints floor(sqrt(amountA*amountB)) claims.
// Subsequent deposits take the largest amounts that preserve the current
// reserve ratio, never exceeding the desired amounts and never falling below
// the respective minimums; minted claims are the floor of the smaller of the
// two proportional shares.
//
// Both assets are pulled from caller via TransferFrom before any state is
// committed; a failed second pull hands the first back before aborting.
func (p *Pool) AddLiquidity(caller, tokenA, tokenB common.Address, amountADesired, amountBDesired, amountAMin, amountBMin *big.Int, recipient common.Address, deadline int64) (*AddLiquidityRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkDeadline(deadline); err != nil {
		return nil, err
	}
	if tokenA == tokenB {
		return nil, ErrIdenticalTokens
	}
	if tokenA == (common.Address{}) || tokenB == (common.Address{}) {
		return nil, ErrInvalidPair
	}
	if recipient == (common.Address{}) {
		return nil, ErrZeroRecipient
	}
	if !nonNeg(amountADesired) || !nonNeg(amountBDesired) || !nonNeg(amountAMin) || !nonNeg(amountBMin) {
		return nil, ErrArithmetic
	}

	// Reserve slots oriented to the caller's pair order. A never-deposited
	// pool adopts the caller's order as canonical on commit.
	ra, rb := p.reserveA, p.reserveB
	if p.bound() {
		var err error
		ra, rb, err = p.orient(tokenA, tokenB)
		if err != nil {
			return nil, err
		}
	}

	var amountA, amountB, minted *big.Int
	if p.totalClaims.Sign() == 0 {
		amountA = new(big.Int).Set(amountADesired)
		amountB = new(big.Int).Set(amountBDesired)
		minted = Sqrt(new(big.Int).Mul(amountA, amountB))
	} else {
		amountBOptimal := mulDiv(amountADesired, rb, ra)
		if amountBOptimal.Cmp(amountBDesired) <= 0 {
			if amountBOptimal.Cmp(amountBMin) < 0 {
				return nil, ErrInsufficientBAmount
			}
			amountA = new(big.Int).Set(amountADesired)
			amountB = amountBOptimal
		} else {
			amountAOptimal := mulDiv(amountBDesired, ra, rb)
			if amountAOptimal.Cmp(amountAMin) < 0 {
				return nil, ErrInsufficientAAmount
			}
			amountA = amountAOptimal
			amountB = new(big.Int).Set(amountBDesired)
		}
		minted = Min(mulDiv(amountA, p.totalClaims, ra), mulDiv(amountB, p.totalClaims, rb))
	}
	if minted.Sign() == 0 {
		return nil, ErrInsufficientLiquidityMinted
	}

	newRA := new(big.Int).Add(ra, amountA)
	newRB := new(big.Int).Add(rb, amountB)
	if err := checkedReserve(newRA); err != nil {
		return nil, err
	}
	if err := checkedReserve(newRB); err != nil {
		return nil, err
	}

	ta, err := p.token(tokenA)
	if err != nil {
		return nil, err
	}
	tb, err := p.token(tokenB)
	if err != nil {
		return nil, err
	}
	if !ta.TransferFrom(caller, p.addr, amountA) {
		return nil, ErrTransferFailed
	}
	if !tb.TransferFrom(caller, p.addr, amountB) {
		// Hand the first leg back so the failed deposit is all-or-nothing.
		ta.Transfer(caller, amountA)
		return nil, ErrTransferFailed
	}

	if !p.bound() {
		p.tokenA, p.tokenB = tokenA, tokenB
	}
	ra.Set(newRA)
	rb.Set(newRB)
	p.mintClaims(recipient, minted)

	return &AddLiquidityRecord{
		Caller:       caller,
		TokenA:       tokenA,
		TokenB:       tokenB,
		AmountA:      amountA,
		AmountB:      amountB,
		MintedClaims: minted,
	}, nil
}

// RemoveLiquidity burns claimAmount of the caller's claims and pays out the
// proportional share of both reserves to recipient. The burn and reserve
// decrease are committed before the outgoing transfers; a collaborator
// reporting failure rolls the commit back.
func (p *Pool) RemoveLiquidity(caller, tokenA, tokenB common.Address, claimAmount, amountAMin, amountBMin *big.Int, recipient common.Address, deadline int64) (*RemoveLiquidityRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkDeadline(deadline); err != nil {
		return nil, err
	}
	if tokenA == tokenB {
		return nil, ErrIdenticalTokens
	}
	if recipient == (common.Address{}) {
		return nil, ErrZeroRecipient
	}
	if claimAmount == nil || claimAmount.Sign() <= 0 || !nonNeg(amountAMin) || !nonNeg(amountBMin) {
		return nil, ErrArithmetic
	}

	ra, rb, err := p.orient(tokenA, tokenB)
	if err != nil {
		return nil, err
	}
	if p.totalClaims.Sign() == 0 {
		return nil, ErrInsufficientLiquidity
	}

	balance := p.claims[caller]
	if balance == nil || balance.Cmp(claimAmount) < 0 {
		return nil, ErrInsufficientBalance
	}

	amountA := mulDiv(claimAmount, ra, p.totalClaims)
	amountB := mulDiv(claimAmount, rb, p.totalClaims)
	if amountA.Cmp(amountAMin) < 0 {
		return nil, ErrInsufficientAAmount
	}
	if amountB.Cmp(amountBMin) < 0 {
		return nil, ErrInsufficientBAmount
	}

	oldRA := new(big.Int).Set(ra)
	oldRB := new(big.Int).Set(rb)
	newRA := new(big.Int).Sub(ra, amountA)
	newRB := new(big.Int).Sub(rb, amountB)
	if err := checkedReserve(newRA); err != nil {
		return nil, err
	}
	if err := checkedReserve(newRB); err != nil {
		return nil, err
	}

	ta, err := p.token(tokenA)
	if err != nil {
		return nil, err
	}
	tb, err := p.token(tokenB)
	if err != nil {
		return nil, err
	}

	// Burn before the external calls: a re-entrant caller sees the reduced
	// balance and reserves, never a state it could redeem twice from.
	burned := new(big.Int).Set(claimAmount)
	p.burnClaims(caller, burned)
	ra.Set(newRA)
	rb.Set(newRB)

	rollback := func() {
		ra.Set(oldRA)
		rb.Set(oldRB)
		p.mintClaims(caller, burned)
	}
	if amountA.Sign() > 0 && !ta.Transfer(recipient, amountA) {
		rollback()
		return nil, ErrTransferFailed
	}
	if amountB.Sign() > 0 && !tb.Transfer(recipient, amountB) {
		// Unreachable with a conforming collaborator: the payout is always
		// covered by the pool's custody of its own reserves.
		rollback()
		return nil, ErrTransferFailed
	}

	return &RemoveLiquidityRecord{
		Caller:       caller,
		TokenA:       tokenA,
		TokenB:       tokenB,
		AmountA:      amountA,
		AmountB:      amountB,
		BurnedClaims: burned,
	}, nil
}
