package main

import (
	"encoding/binary"
	"os"

	"github.com/Markus-Studio/voss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newInspectEnumCmd() *cobra.Command {
	var tagWidth int

	cmd := &cobra.Command{
		Use:   "inspect-enum <file>",
		Short: "Read an enum buffer's tag and pointer header without a payload schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if tagWidth != 4 {
				log.Fatal("unsupported --tag-width, only 4-byte tags are implemented", "tag_width", tagWidth)
			}

			if len(buf) < 8 {
				return &voss.ReadError{Context: "enum header", Cause: voss.ErrInvalidBuffer}
			}

			tag := binary.LittleEndian.Uint32(buf[0:4])
			pointer := binary.LittleEndian.Uint32(buf[4:8])
			structOffset := 4 + int(pointer)

			log.Info("decoded enum header",
				"bytes", len(buf),
				"tag", tag,
				"pointer", pointer,
				"struct_offset", structOffset,
			)

			if structOffset >= len(buf) {
				log.Warn("pointer resolves past the end of the buffer", "struct_offset", structOffset, "bytes", len(buf))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&tagWidth, "tag-width", 4, "byte width of the tag field")
	return cmd
}
