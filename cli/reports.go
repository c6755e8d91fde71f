// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package cli

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) NewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get",
		Short:   "Fetch stub reports by identifier",
		Example: "get <report_id> [<report_id>...]",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if c.connectErr != nil {
				logErrorCmd(*cmd, c.connectErr)
				return
			}

			entries, missing, err := c.reportsSDK.GetReports(cmd.Context(), args)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			for _, entry := range entries {
				printReport(cmd, entry.ID, entry.Payload, entry.Signature, len(entry.Chain))
			}
			for _, id := range missing {
				cmd.Printf("missing: %q\n", id)
			}
		},
	}
}

func (c *CLI) NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch every stub report the server has registered",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if c.connectErr != nil {
				logErrorCmd(*cmd, c.connectErr)
				return
			}

			entries, err := c.reportsSDK.GetAllReports(cmd.Context())
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			cmd.Printf("%d report(s) registered\n", len(entries))
			for _, entry := range entries {
				printReport(cmd, entry.ID, entry.Payload, entry.Signature, len(entry.Chain))
			}
		},
	}
}

func printReport(cmd *cobra.Command, id string, payload, signature []byte, chainLen int) {
	cmd.Printf("report %q: %d payload bytes, %d signature bytes, chain of %d\n", id, len(payload), len(signature), chainLen)
	if Verbose {
		cmd.Println(fmt.Sprintf("  payload:   %s", base64.StdEncoding.EncodeToString(payload)))
		cmd.Println(fmt.Sprintf("  signature: %s", base64.StdEncoding.EncodeToString(signature)))
	}
}
