package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var hexdump bool
	var rootSize int

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Load a struct buffer and report its inline/heap region boundary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			log.Info("loaded buffer", "path", args[0], "bytes", len(buf))

			if rootSize > 0 {
				if rootSize > len(buf) {
					log.Warn("root-size exceeds buffer length", "root_size", rootSize, "bytes", len(buf))
				} else {
					log.Info("region boundary",
						"inline", fmt.Sprintf("[0, %d)", rootSize),
						"heap", fmt.Sprintf("[%d, %d)", rootSize, len(buf)),
					)
				}
			}

			if hexdump {
				printHexdump(buf)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&hexdump, "hexdump", false, "print the buffer as a hex dump")
	cmd.Flags().IntVar(&rootSize, "root-size", 0, "inline payload size, to mark the inline/heap boundary")
	return cmd
}

func printHexdump(buf []byte) {
	const width = 16
	for offset := 0; offset < len(buf); offset += width {
		end := offset + width
		if end > len(buf) {
			end = len(buf)
		}
		row := buf[offset:end]

		hex := make([]byte, 0, width*3)
		for _, b := range row {
			hex = fmt.Appendf(hex, "%02x ", b)
		}
		fmt.Printf("%08x  %-48s\n", offset, hex)
	}
}
