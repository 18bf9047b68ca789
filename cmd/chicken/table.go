package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnightingale/chicken"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the token of every byte value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for b := 0; b < 256; b++ {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%02x %s\n", b, chicken.Token(byte(b))); err != nil {
				return err
			}
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chicken %s (%s)\n", chicken.Version(), chicken.EncodeKernel())
	},
}
