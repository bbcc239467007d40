package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	ammkeeper "github.com/arcadia-dex/arcadia/x/amm/keeper"
	ammtypes "github.com/arcadia-dex/arcadia/x/amm/types"
	gaugekeeper "github.com/arcadia-dex/arcadia/x/gauge/keeper"
	gaugetypes "github.com/arcadia-dex/arcadia/x/gauge/types"
)

// RewardDenom is the denom test gauges pay rewards in.
const RewardDenom = "uarcadia"

// GaugeKeepers creates test keepers for the gauge module and its AMM
// dependency, sharing one multistore and one mock bank. Rewards accrue at
// one unit per second per allocation point.
func GaugeKeepers(t testing.TB) (gaugekeeper.Keeper, *ammkeeper.Keeper, *MockBankKeeper, sdk.Context) {
	ammStoreKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	gaugeStoreKey := storetypes.NewKVStoreKey(gaugetypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(ammStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(gaugeStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	bank := NewMockBankKeeper()

	gaugeModuleAddr := authtypes.NewModuleAddress(gaugetypes.ModuleName)

	ammK := ammkeeper.NewKeeper(
		cdc,
		ammStoreKey,
		bank,
		Authority.String(),
		gaugeModuleAddr.String(),
	)

	gaugeK := gaugekeeper.NewKeeper(
		cdc,
		gaugeStoreKey,
		ammK,
		bank,
		gaugetypes.NewLinearRewardSource(math.OneInt()),
		Authority.String(),
		RewardDenom,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())

	ammK.InitGenesis(ctx, *ammtypes.DefaultGenesis())
	gaugeK.InitGenesis(ctx, *gaugetypes.DefaultGenesis())

	return gaugeK, ammK, bank, ctx
}
