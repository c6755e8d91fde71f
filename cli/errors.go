// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0
package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errServerUnavailable = errors.New("fog report stub is unavailable on the current address")
	errInvalidRequest    = errors.New("the server rejected the request as malformed")
)

func decodeError(err error) error {
	statusErr, ok := status.FromError(err)
	if ok {
		switch statusErr.Code() {
		case codes.Unavailable:
			return errServerUnavailable
		case codes.InvalidArgument:
			return errInvalidRequest
		}
	}

	return err
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	cmd.PrintErrln(decodeError(err).Error())
}
