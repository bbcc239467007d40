package types

// Event types emitted by the gauge module
const (
	EventTypeGaugeCreated = "gauge_created"
	EventTypeStake        = "gauge_stake"
	EventTypeUnstake      = "gauge_unstake"
	EventTypeRewardPaid   = "gauge_reward_paid"
	EventTypeFeesRouted   = "gauge_fees_routed"
)

// Event attribute keys
const (
	AttributeKeyPoolID      = "pool_id"
	AttributeKeyStaker      = "staker"
	AttributeKeyAmount      = "amount"
	AttributeKeyReward      = "reward"
	AttributeKeyAllocPoints = "alloc_points"
	AttributeKeyFeeA        = "fee_a"
	AttributeKeyFeeB        = "fee_b"
)
