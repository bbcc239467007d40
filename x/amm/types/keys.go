package types

import (
	"encoding/binary"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix       = []byte{0x01} // pool records by ID
	PoolCountKey        = []byte{0x02} // next pool ID counter
	PoolByPairKeyPrefix = []byte{0x03} // pool ID by canonical (pair, stable) key
	SharesKeyPrefix     = []byte{0x04} // LP share positions by (pool, owner)
	ParamsKey           = []byte{0x05} // module parameters
	RolesKey            = []byte{0x06} // pauser / fee-manager roles
	PausedKey           = []byte{0x07} // global pause flag
)

// PoolKey returns the store key for a pool by ID
func PoolKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(PoolKeyPrefix, bz...)
}

// PoolByPairKey returns the canonical lookup key for a pool. Denoms are
// sorted so that (A, B, stable) and (B, A, stable) resolve to the same key.
// The first denom is length-prefixed so denoms containing slashes, such as
// IBC vouchers, cannot collide across pairs.
func PoolByPairKey(denomA, denomB string, stable bool) []byte {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	curve := byte(0)
	if stable {
		curve = 1
	}
	key := append(PoolByPairKeyPrefix, curve)
	key = append(key, byte(len(denomA)))
	key = append(key, []byte(denomA)...)
	return append(key, []byte(denomB)...)
}

// SharesKey returns the store key for an LP share position. The owner is the
// bech32 string so iteration recovers it without re-encoding.
func SharesKey(poolID uint64, owner string) []byte {
	key := SharesByPoolPrefix(poolID)
	return append(key, []byte(owner)...)
}

// SharesByPoolPrefix returns the prefix for all share positions in a pool
func SharesByPoolPrefix(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(SharesKeyPrefix, bz...)
}
