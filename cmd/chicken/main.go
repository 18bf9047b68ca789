package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mnightingale/chicken"
)

var rootCmd = &cobra.Command{
	Use:           "chicken [file...]",
	Short:         "Encode files as chicken tokens",
	Long:          `Encodes every byte of the given files (or stdin) as a chicken token followed by a space.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
	Args: cobra.ArbitraryArgs,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.Flags().String("encoding", chicken.EncodingChicken.String(), "content encoding to apply")
	rootCmd.Flags().IntP("parallel", "p", 0, "encode whole files with up to N goroutines (0 streams the input)")
}

func main() {
	rootCmd.Version = chicken.Version()

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
