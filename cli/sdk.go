// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	clientgrpc "github.com/ultravioletrs/fog-report/pkg/clients/grpc"
	"github.com/ultravioletrs/fog-report/pkg/sdk"
	reportsgrpc "github.com/ultravioletrs/fog-report/reports/api/grpc"
)

// Verbose toggles payload dumps in command output.
var Verbose bool

type CLI struct {
	reportsSDK sdk.SDK
	config     clientgrpc.Config
	client     clientgrpc.Client
	connectErr error
}

func New(config clientgrpc.Config) *CLI {
	return &CLI{config: config}
}

func (c *CLI) InitializeSDK(cmd *cobra.Command) error {
	client, err := clientgrpc.NewClient(c.config)
	if err != nil {
		c.connectErr = err
		return err
	}
	cmd.Println("🔗 Connected to fog report stub ", client.Secure())
	c.client = client

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	c.reportsSDK = sdk.NewSDK(logger, reportsgrpc.NewClient(client.Connection(), c.config.Timeout))
	return nil
}

func (c *CLI) Close() {
	if c.client != nil {
		if err := c.client.Close(); err != nil {
			_, _ = os.Stderr.WriteString(err.Error())
		}
	}
}
