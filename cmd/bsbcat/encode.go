package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-bsb/bsb/field"
	"github.com/go-bsb/bsb/fieldvalue"
	"github.com/go-bsb/bsb/frame"
)

// resolveAddrs applies config-file defaults to --dest/--src when the
// caller didn't pass them explicitly on the command line.
func resolveAddrs(cmd *cobra.Command, dest, src *uint8) {
	if !cmd.Flags().Changed("dest") && cfg.DefaultDestination != 0 {
		*dest = cfg.DefaultDestination
	}
	if !cmd.Flags().Changed("src") && cfg.DefaultSource != 0 {
		*src = cfg.DefaultSource
	}
}

func newEncodeGetCmd() *cobra.Command {
	var dest, src uint8
	cmd := &cobra.Command{
		Use:   "encode-get <field-name>",
		Short: "Build a Get-request frame for a named field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveAddrs(cmd, &dest, &src)
			f, err := field.MustByName(args[0])
			if err != nil {
				return err
			}
			frm := frame.NewGet(dest, src, f.ID)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(frm.Serialize()))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&dest, "dest", 0, "destination address")
	cmd.Flags().Uint8Var(&src, "src", 0x42, "source address")
	return cmd
}

func newEncodeSetCmd() *cobra.Command {
	var dest, src uint8
	cmd := &cobra.Command{
		Use:   "encode-set <name: value>",
		Short: "Build a Set-request frame from a \"name: value\" string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveAddrs(cmd, &dest, &src)
			fv, err := fieldvalue.FromText(args[0])
			if err != nil {
				return err
			}
			payload, err := fv.Encode()
			if err != nil {
				return err
			}
			frm := frame.NewSet(dest, src, fv.FieldID(), payload)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(frm.Serialize()))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&dest, "dest", 0, "destination address")
	cmd.Flags().Uint8Var(&src, "src", 0x42, "source address")
	return cmd
}
