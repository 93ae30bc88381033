/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package h2c-vectors prints hash-to-curve test vectors for the supported curves and hash functions.
package main

import (
	"os"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-h2c-go/cmd/h2c-vectors/mapcmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "h2c-vectors",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	logger := log.New("aries-h2c/vectors")

	mapCmd, err := mapcmd.Cmd(os.Stdout)
	if err != nil {
		logger.Fatalf(err.Error())
	}

	rootCmd.AddCommand(mapCmd, mapcmd.HashesCmd(os.Stdout))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run h2c-vectors: %s", err)
	}
}
