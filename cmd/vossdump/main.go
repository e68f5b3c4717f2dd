// Command vossdump manually inspects a VOSS-encoded buffer on disk. The
// core codec is schema-agnostic, so the tool works best-effort: a hex dump
// with a user-supplied inline/heap boundary for struct buffers, and a raw
// tag/pointer read for enum buffers, without requiring the payload schema.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "vossdump",
		Short: "Inspect VOSS-encoded buffers",
	}

	root.AddCommand(newInspectCmd())
	root.AddCommand(newInspectEnumCmd())

	if err := root.Execute(); err != nil {
		log.Fatal("vossdump failed", "err", err)
		os.Exit(1)
	}
}
