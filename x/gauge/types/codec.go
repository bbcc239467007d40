package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the amino
// codec used for sign bytes.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateGauge{}, "gauge/MsgCreateGauge", nil)
	cdc.RegisterConcrete(&MsgStake{}, "gauge/MsgStake", nil)
	cdc.RegisterConcrete(&MsgUnstake{}, "gauge/MsgUnstake", nil)
	cdc.RegisterConcrete(&MsgClaimReward{}, "gauge/MsgClaimReward", nil)
}

// ModuleCdc is the module's amino codec. It also marshals stored records
// (gauges, user stakes); the state schema is amino-stable.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
