package main

import (
	"log"
	"os"

	"chosenoffset.com/segments/internal/core/geometry"
	"chosenoffset.com/segments/internal/route"
	"github.com/spf13/cobra"
)

var (
	routePath string
	verbose   bool

	rootCmd = &cobra.Command{
		Use:   "segdemo",
		Short: "Translate a chain of points and print the segments between them",
		Args:  cobra.NoArgs,
		// main reports the error once through log.Fatal
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := route.LoadConfig(routePath)
			if err != nil {
				return err
			}

			var logger geometry.Logger
			if verbose {
				logger = log.Default()
			}

			return route.Build(cfg).Report(cmd.OutOrStdout(), logger)
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&routePath, "route", "", "JSON route file (start point and translation steps)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log each segment as it is measured")
}

func main() {
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
