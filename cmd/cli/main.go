// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/ultravioletrs/fog-report/cli"
	"github.com/ultravioletrs/fog-report/internal/env"
	clientgrpc "github.com/ultravioletrs/fog-report/pkg/clients/grpc"
)

const (
	svcName       = "cli"
	envPrefixGRPC = "FOG_REPORT_GRPC_"
)

func main() {
	var clientConfig clientgrpc.Config
	if err := env.Parse(&clientConfig, env.Options{Prefix: envPrefixGRPC}); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	cliSVC := cli.New(clientConfig)

	rootCmd := &cobra.Command{
		Use:   "fog-report-cli",
		Short: "Fog report stub CLI",
		Long: "Command line interface for querying a fog report stub server: " +
			"fetch individual stub reports by identifier or list everything registered.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cliSVC.InitializeSDK(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cliSVC.Close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "print report payloads")

	rootCmd.AddCommand(cliSVC.NewGetCmd())
	rootCmd.AddCommand(cliSVC.NewListCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
