package main

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"

	"github.com/go-bsb/bsb/frame"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <capture-file>",
		Short: "Memory-map a raw bus capture and decode every frame in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay(cmd, args[0])
		},
	}
}

func replay(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return err
	}
	defer m.Unmap()

	rest := []byte(m)
	count := 0
	for len(rest) > 0 {
		result := frame.Parse(rest)
		switch {
		case result.Ok:
			printFrame(cmd.OutOrStdout(), result.Frame)
			count++
			rest = result.Rest
		case result.Incomplete:
			fmt.Fprintf(cmd.ErrOrStderr(), "trailing %d incomplete byte(s)\n", len(result.Rest))
			rest = nil
		case result.Failure:
			logger.Warn("resyncing past malformed frame at offset %d: %v", len(m)-len(rest), result.Err)
			rest = result.Rest
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "decoded %d frame(s)\n", count)
	return nil
}
