package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-bsb/bsb/frame"
)

func newDecodeCmd() *cobra.Command {
	var inputPath string
	cmd := &cobra.Command{
		Use:   "decode [hex-bytes]",
		Short: "Decode one or more frames from hex bytes, a file, or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, inputPath)
			if err != nil {
				return err
			}
			return decodeAll(cmd.OutOrStdout(), data)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "read raw frame bytes from file instead of stdin (a hex-bytes argument takes precedence)")
	return cmd
}

func readInput(args []string, inputPath string) ([]byte, error) {
	switch {
	case len(args) == 1:
		return hex.DecodeString(args[0])
	case inputPath != "":
		return os.ReadFile(inputPath)
	default:
		return io.ReadAll(os.Stdin)
	}
}

type decodedFrame struct {
	Destination byte   `json:"destination"`
	Source      byte   `json:"source"`
	PacketType  string `json:"packet_type"`
	FieldID     uint32 `json:"field_id"`
	Payload     string `json:"payload_hex"`
	Named       string `json:"named,omitempty"`
}

func decodeAll(w io.Writer, data []byte) error {
	rest := data
	for len(rest) > 0 {
		result := frame.Parse(rest)
		switch {
		case result.Ok:
			printFrame(w, result.Frame)
			rest = result.Rest
		case result.Incomplete:
			fmt.Fprintf(w, "incomplete: %d trailing byte(s)\n", len(result.Rest))
			return nil
		case result.Failure:
			fmt.Fprintf(w, "parse error: %v (dropped %d byte(s))\n", result.Err, len(rest)-len(result.Rest))
			logger.Warn("resyncing past malformed frame: %v", result.Err)
			rest = result.Rest
		}
	}
	return nil
}

func printFrame(w io.Writer, f frame.Frame) {
	out := decodedFrame{
		Destination: f.Destination,
		Source:      f.Source,
		PacketType:  f.PacketType.String(),
		FieldID:     f.FieldID,
		Payload:     hex.EncodeToString(f.Payload),
	}
	if fv := f.TryDecode(); fv != nil {
		out.Named = fv.String()
	}
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.Encode(out)
		return
	}
	if out.Named != "" {
		fmt.Fprintf(w, "%s -> %s [%s] field=0x%08x %s\n", formatAddr(f.Source), formatAddr(f.Destination), out.PacketType, f.FieldID, out.Named)
		return
	}
	fmt.Fprintf(w, "%s -> %s [%s] field=0x%08x payload=%s\n", formatAddr(f.Source), formatAddr(f.Destination), out.PacketType, f.FieldID, out.Payload)
}

func formatAddr(b byte) string { return fmt.Sprintf("0x%02x", b) }
