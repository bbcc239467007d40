package types

import "encoding/binary"

const (
	// ModuleName defines the module name
	ModuleName = "gauge"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the gauge module
	RouterKey = ModuleName
)

// KVStore key prefixes
var (
	GaugeKeyPrefix     = []byte{0x01} // gauge records by pool id
	UserStakeKeyPrefix = []byte{0x02} // user stakes by (pool id, owner)
	ParamsKey          = []byte{0x03} // module parameters
)

// GaugeKey returns the store key for a pool's gauge.
func GaugeKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(GaugeKeyPrefix, bz...)
}

// UserStakeKey returns the store key for a staker's position in a gauge.
func UserStakeKey(poolID uint64, owner string) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	key := append(UserStakeKeyPrefix, bz...)
	return append(key, []byte(owner)...)
}

// UserStakesByGaugePrefix returns the iteration prefix for all stakes in a gauge.
func UserStakesByGaugePrefix(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(UserStakeKeyPrefix, bz...)
}
