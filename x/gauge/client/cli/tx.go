package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/arcadia-dex/arcadia/x/gauge/types"
)

// GetTxCmd returns the transaction commands for the gauge module
func GetTxCmd() *cobra.Command {
	gaugeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Gauge transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	gaugeTxCmd.AddCommand(
		CmdCreateGauge(),
		CmdStake(),
		CmdUnstake(),
		CmdClaimReward(),
	)

	return gaugeTxCmd
}

// CmdCreateGauge returns a CLI command handler for registering a gauge
func CmdCreateGauge() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-gauge [pool-id] [alloc-points]",
		Short: "Register a staking gauge for a pool (authority only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %s", args[0])
			}
			allocPoints, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid alloc-points: %s", args[1])
			}

			msg := &types.MsgCreateGauge{
				Creator:     clientCtx.GetFromAddress().String(),
				PoolId:      poolID,
				AllocPoints: allocPoints,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdStake returns a CLI command handler for staking LP shares
func CmdStake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake [pool-id] [amount]",
		Short: "Stake LP shares into a pool's gauge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %s", args[0])
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgStake{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Amount: amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnstake returns a CLI command handler for unstaking LP shares
func CmdUnstake() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unstake [pool-id] [amount]",
		Short: "Release staked LP shares from a pool's gauge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %s", args[0])
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgUnstake{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Amount: amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaimReward returns a CLI command handler for claiming pending rewards
func CmdClaimReward() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-reward [pool-id]",
		Short: "Claim pending staking rewards from a pool's gauge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %s", args[0])
			}

			msg := &types.MsgClaimReward{
				Staker: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
