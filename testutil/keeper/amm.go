package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-dex/arcadia/x/amm/keeper"
	"github.com/arcadia-dex/arcadia/x/amm/types"
	gaugetypes "github.com/arcadia-dex/arcadia/x/gauge/types"
)

// Authority is the privileged account used by test keepers.
var Authority = sdk.AccAddress([]byte("amm_test_authority__"))

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// store and a mock bank. The gauge module account is wired as the fee
// claimer, matching production.
func AmmKeeper(t testing.TB) (*keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	bank := NewMockBankKeeper()

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bank,
		Authority.String(),
		authtypes.NewModuleAddress(gaugetypes.ModuleName).String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, bank, ctx
}
