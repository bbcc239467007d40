package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Role names used in events and authorization errors.
const (
	RolePauser     = "pauser"
	RoleFeeManager = "fee_manager"
)

// Roles holds the two operational roles and their pending successors.
// Transfers are two-step: the holder nominates, only the nominee accepts.
type Roles struct {
	Pauser            string `json:"pauser"`
	PendingPauser     string `json:"pending_pauser,omitempty"`
	FeeManager        string `json:"fee_manager"`
	PendingFeeManager string `json:"pending_fee_manager,omitempty"`
}

// NewRoles seeds both roles with the same initial holder.
func NewRoles(holder string) Roles {
	return Roles{Pauser: holder, FeeManager: holder}
}

// Validate checks that the role holders are well-formed bech32 addresses.
func (r Roles) Validate() error {
	for name, addr := range map[string]string{
		"pauser":      r.Pauser,
		"fee_manager": r.FeeManager,
	} {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return fmt.Errorf("invalid %s address %q: %w", name, addr, err)
		}
	}
	for name, addr := range map[string]string{
		"pending_pauser":      r.PendingPauser,
		"pending_fee_manager": r.PendingFeeManager,
	} {
		if addr == "" {
			continue
		}
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return fmt.Errorf("invalid %s address %q: %w", name, addr, err)
		}
	}
	return nil
}
