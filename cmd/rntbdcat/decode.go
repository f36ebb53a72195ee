package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cosmosdb-go/rntbd/headerstream"
	"github.com/cosmosdb-go/rntbd/internal/wire"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Decode a binary RNTBD header frame read from stdin",
		Long: `decode reads a raw RNTBD header block from stdin and prints each token's
id, name (if recognized), wire type, and value to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd)
		},
	}
}

func runDecode(cmd *cobra.Command) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	stream, err := headerstream.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode stream: %w", err)
	}

	out := cmd.OutOrStdout()
	stream.ForEach(func(entry wire.RegistryEntry, v wire.Value) {
		fmt.Fprintf(out, "%-4d %-36s %-12s %s\n", entry.ID, entry.Name, entry.Type, formatValue(v))
	})
	return nil
}

func formatValue(v wire.Value) string {
	switch v.Kind() {
	case wire.Byte:
		return fmt.Sprintf("0x%02X", v.AsByte())
	case wire.SmallString, wire.String, wire.ULongString:
		return v.AsString()
	case wire.Bytes:
		return base64.StdEncoding.EncodeToString(v.AsBytes())
	case wire.Long:
		return fmt.Sprintf("%d", v.AsLong())
	case wire.ULong:
		return fmt.Sprintf("%d", v.AsULong())
	case wire.LongLong:
		return fmt.Sprintf("%d", v.AsLongLong())
	case wire.Double:
		return fmt.Sprintf("%g", v.AsDouble())
	case wire.Guid:
		g := v.AsGuid()
		return hex.EncodeToString(g[:])
	default:
		return "?"
	}
}
