package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// StakePosition is one staker's position in genesis form.
type StakePosition struct {
	PoolId uint64    `json:"pool_id"`
	Owner  string    `json:"owner"`
	Stake  UserStake `json:"stake"`
}

// GenesisState holds the full gauge module state.
type GenesisState struct {
	Gauges    []Gauge         `json:"gauges"`
	Positions []StakePosition `json:"positions"`
}

// DefaultGenesis returns the default genesis state: no gauges, no stakes.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]bool, len(gs.Gauges))
	staked := make(map[uint64]int, len(gs.Gauges))
	for i, gauge := range gs.Gauges {
		if err := gauge.Validate(); err != nil {
			return fmt.Errorf("gauge %d: %w", i, err)
		}
		if seen[gauge.PoolId] {
			return fmt.Errorf("duplicate gauge for pool %d", gauge.PoolId)
		}
		seen[gauge.PoolId] = true
		staked[gauge.PoolId] = i
	}

	for i, pos := range gs.Positions {
		if pos.Owner == "" {
			return fmt.Errorf("position %d: owner cannot be empty", i)
		}
		if !seen[pos.PoolId] {
			return fmt.Errorf("position %d references unknown gauge for pool %d", i, pos.PoolId)
		}
		if err := pos.Stake.Validate(); err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
	}

	// every gauge's total must equal the sum of its positions
	for poolID, idx := range staked {
		total := gs.Gauges[idx].TotalStaked
		posSum := math.ZeroInt()
		for _, pos := range gs.Positions {
			if pos.PoolId == poolID {
				posSum = posSum.Add(pos.Stake.Amount)
			}
		}
		if !posSum.Equal(total) {
			return fmt.Errorf("gauge for pool %d: total staked %s does not match sum of positions %s", poolID, total, posSum)
		}
	}
	return nil
}
