package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the amino
// codec used for sign bytes.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "amm/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "amm/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgTransferShares{}, "amm/MsgTransferShares", nil)
	cdc.RegisterConcrete(&MsgSetSwapFee{}, "amm/MsgSetSwapFee", nil)
	cdc.RegisterConcrete(&MsgSetPaused{}, "amm/MsgSetPaused", nil)
	cdc.RegisterConcrete(&MsgTransferRole{}, "amm/MsgTransferRole", nil)
	cdc.RegisterConcrete(&MsgAcceptRole{}, "amm/MsgAcceptRole", nil)
}

// ModuleCdc is the module's amino codec. It also marshals stored records
// (pools, params, roles); the state schema is amino-stable.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
