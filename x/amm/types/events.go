package types

// Event types emitted by the AMM module
const (
	EventTypePoolCreated       = "amm_pool_created"
	EventTypeSwap              = "amm_swap"
	EventTypeLiquidityAdded    = "amm_liquidity_added"
	EventTypeLiquidityRemoved  = "amm_liquidity_removed"
	EventTypeSharesTransferred = "amm_shares_transferred"
	EventTypeReserveSync       = "amm_reserve_sync"
	EventTypeFeesClaimed       = "amm_fees_claimed"
	EventTypeSwapFeeUpdated    = "amm_swap_fee_updated"
	EventTypePaused            = "amm_paused"
	EventTypeUnpaused          = "amm_unpaused"
	EventTypeRoleTransferred   = "amm_role_transferred"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyDenomA    = "denom_a"
	AttributeKeyDenomB    = "denom_b"
	AttributeKeyStable    = "stable"
	AttributeKeyTrader    = "trader"
	AttributeKeyProvider  = "provider"
	AttributeKeyDenomIn   = "denom_in"
	AttributeKeyDenomOut  = "denom_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyFee       = "fee"
	AttributeKeyFeeA      = "fee_a"
	AttributeKeyFeeB      = "fee_b"
	AttributeKeyShares    = "shares"
	AttributeKeyReserveA  = "reserve_a"
	AttributeKeyReserveB  = "reserve_b"
	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeyRole      = "role"
	AttributeKeyFeeBps    = "fee_bps"
)
