package keeper

import (
	"context"
	"fmt"

	"github.com/arcadia-dex/arcadia/x/amm/types"
)

// GetParams returns the module parameters, falling back to defaults when
// nothing has been stored yet.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	if err := k.cdc.Unmarshal(bz, &params); err != nil {
		panic(fmt.Errorf("unmarshal params: %w", err))
	}
	return params
}

func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	store.Set(types.ParamsKey, bz)
	return nil
}
