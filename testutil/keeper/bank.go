package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MockBankKeeper is an in-memory bank with real balance accounting. The AMM
// custody check compares balance deltas around every transfer, so the mock
// must move funds for real rather than record calls.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// Tax, when positive, skims that many base units off every transfer,
	// simulating a fee-on-transfer asset. Used to exercise custody rejection.
	Tax math.Int
}

// NewMockBankKeeper returns an empty mock bank.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances: make(map[string]sdk.Coins),
		Tax:      math.ZeroInt(),
	}
}

// FundAccount credits coins to an account out of thin air.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// SendCoins moves coins between accounts, failing on insufficient funds.
func (m *MockBankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	fromBalance := m.balances[from.String()]
	if !fromBalance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, sending %s", from, fromBalance, amt)
	}

	received := amt
	if m.Tax.IsPositive() {
		taxed := sdk.NewCoins()
		for _, coin := range amt {
			net := coin.Amount.Sub(m.Tax)
			if net.IsPositive() {
				taxed = taxed.Add(sdk.NewCoin(coin.Denom, net))
			}
		}
		received = taxed
	}

	m.balances[from.String()] = fromBalance.Sub(amt...)
	m.balances[to.String()] = m.balances[to.String()].Add(received...)
	return nil
}

// GetBalance returns an account's balance in one denom.
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	balance := m.balances[addr.String()]
	return sdk.NewCoin(denom, balance.AmountOf(denom))
}
