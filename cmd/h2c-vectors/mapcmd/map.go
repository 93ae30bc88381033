/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mapcmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-h2c-go/internal/logutil"
	"github.com/hyperledger/aries-h2c-go/pkg/crypto/hashes"
	"github.com/hyperledger/aries-h2c-go/pkg/crypto/primitive/ecgroup"
	"github.com/hyperledger/aries-h2c-go/pkg/crypto/primitive/h2c"
)

const (
	curveFlagName      = "curve"
	curveEnvKey        = "H2C_CURVE"
	curveFlagShorthand = "c"
	curveFlagUsage     = "Curve name. Possible values [" + ecgroup.P256Name + "] [" + ecgroup.P384Name + "] [" +
		ecgroup.P521Name + "]. Defaults to " + ecgroup.P256Name + "." +
		" Alternatively, this can be set with the following environment variable: " + curveEnvKey

	hashFlagName      = "hash"
	hashEnvKey        = "H2C_HASH"
	hashFlagShorthand = "H"
	hashFlagUsage     = "Hash function identifier, see the hashes command. Defaults to " + hashes.SHA256 + "." +
		" Alternatively, this can be set with the following environment variable: " + hashEnvKey

	dstFlagName      = "dst"
	dstEnvKey        = "H2C_DST"
	dstFlagShorthand = "d"
	dstFlagUsage     = "Domain separation tag." +
		" Alternatively, this can be set with the following environment variable: " + dstEnvKey

	msgFlagName      = "msg"
	msgEnvKey        = "H2C_MSG"
	msgFlagShorthand = "m"
	msgFlagUsage     = "Message to hash. Repeat the flag to produce one vector per message." +
		" Alternatively, a single message can be set with the following environment variable: " + msgEnvKey

	marginFlagName  = "margin"
	marginEnvKey    = "H2C_MARGIN"
	marginFlagUsage = "Security margin in bits added to the field size. Defaults to 128." +
		" Alternatively, this can be set with the following environment variable: " + marginEnvKey

	reductionFlagName  = "reduction"
	reductionEnvKey    = "H2C_REDUCTION"
	reductionFlagUsage = "Reduction of the HKDF output. Possible values [field] [order]. Defaults to field." +
		" Alternatively, this can be set with the following environment variable: " + reductionEnvKey

	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "H2C_LOG_LEVEL"
	logLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey
)

var logger = log.New("aries-h2c/vectors")

// Vector is one printed test vector. Coordinates and the SEC1 encoding are lowercase hex.
type Vector struct {
	Curve string `json:"curve"`
	Hash  string `json:"hash"`
	DST   string `json:"dst"`
	Msg   string `json:"msg"`
	X     string `json:"x"`
	Y     string `json:"y"`
	SEC1  string `json:"sec1"`
}

type parameters struct {
	curve     string
	hashID    string
	dst       string
	msgs      []string
	margin    int
	reduction h2c.Reduction
}

// Cmd returns the Cobra map command writing vectors to out.
func Cmd(out io.Writer) (*cobra.Command, error) {
	if out == nil {
		return nil, errors.New("output writer is nil")
	}

	mapCmd := createMapCMD(out)

	createFlags(mapCmd)

	return mapCmd, nil
}

// HashesCmd returns the Cobra command listing supported hash identifiers.
func HashesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "hashes",
		Short: "List hash functions",
		Long:  "List the hash function identifiers accepted by the --hash flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(out, strings.Join(hashes.Names(), "\n"))

			return err
		},
	}
}

func createMapCMD(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Map messages to a curve",
		Long:  "Hash messages to points of a curve with the simplified SWU map and print the results as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			logLevel, err := getUserSetVar(cmd, logLevelFlagName, logLevelEnvKey, true)
			if err != nil {
				return err
			}

			err = setLogLevel(logLevel)
			if err != nil {
				return err
			}

			params, err := readParameters(cmd)
			if err != nil {
				return err
			}

			return writeVectors(out, params)
		},
	}
}

func createFlags(mapCmd *cobra.Command) {
	mapCmd.Flags().StringP(curveFlagName, curveFlagShorthand, "", curveFlagUsage)
	mapCmd.Flags().StringP(hashFlagName, hashFlagShorthand, "", hashFlagUsage)
	mapCmd.Flags().StringP(dstFlagName, dstFlagShorthand, "", dstFlagUsage)
	mapCmd.Flags().StringArrayP(msgFlagName, msgFlagShorthand, []string{}, msgFlagUsage)
	mapCmd.Flags().String(marginFlagName, "", marginFlagUsage)
	mapCmd.Flags().String(reductionFlagName, "", reductionFlagUsage)
	mapCmd.Flags().String(logLevelFlagName, "", logLevelFlagUsage)
}

func readParameters(cmd *cobra.Command) (*parameters, error) { //nolint:funlen
	curve, err := getUserSetVar(cmd, curveFlagName, curveEnvKey, true)
	if err != nil {
		return nil, err
	}

	if curve == "" {
		curve = ecgroup.P256Name
	}

	hashID, err := getUserSetVar(cmd, hashFlagName, hashEnvKey, true)
	if err != nil {
		return nil, err
	}

	if hashID == "" {
		hashID = hashes.SHA256
	}

	dst, err := getUserSetVar(cmd, dstFlagName, dstEnvKey, false)
	if err != nil {
		return nil, err
	}

	msgs, err := getMessages(cmd)
	if err != nil {
		return nil, err
	}

	marginStr, err := getUserSetVar(cmd, marginFlagName, marginEnvKey, true)
	if err != nil {
		return nil, err
	}

	margin := h2c.DefaultMargin

	if marginStr != "" {
		margin, err = strconv.Atoi(marginStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse margin %q: %w", marginStr, err)
		}
	}

	reductionStr, err := getUserSetVar(cmd, reductionFlagName, reductionEnvKey, true)
	if err != nil {
		return nil, err
	}

	reduction, err := h2c.ParseReduction(reductionStr)
	if err != nil {
		return nil, err
	}

	return &parameters{
		curve:     curve,
		hashID:    hashID,
		dst:       dst,
		msgs:      msgs,
		margin:    margin,
		reduction: reduction,
	}, nil
}

func writeVectors(out io.Writer, params *parameters) error {
	group, err := ecgroup.ByName(params.curve)
	if err != nil {
		return err
	}

	mapper, err := h2c.New(group, h2c.WithHash(params.hashID), h2c.WithMargin(params.margin),
		h2c.WithReduction(params.reduction))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)

	for _, msg := range params.msgs {
		pt, err := mapper.HashToCurve([]byte(msg), []byte(params.dst))
		if err != nil {
			logutil.LogError(logger, "map", err.Error(), logutil.KV("curve", params.curve))

			return errors.Wrapf(err, "failed to map message on %s", params.curve)
		}

		err = enc.Encode(&Vector{
			Curve: params.curve,
			Hash:  params.hashID,
			DST:   params.dst,
			Msg:   msg,
			X:     pt.X.Text(16),
			Y:     pt.Y.Text(16),
			SEC1:  hex.EncodeToString(pt.Marshal()),
		})
		if err != nil {
			return errors.Wrap(err, "failed to write vector")
		}
	}

	logutil.LogDebug(logger, "map", "vectors written", logutil.KV("curve", params.curve),
		logutil.KV("hash", params.hashID), logutil.KV("count", len(params.msgs)))

	return nil
}

func getMessages(cmd *cobra.Command) ([]string, error) {
	if cmd.Flags().Changed(msgFlagName) {
		value, err := cmd.Flags().GetStringArray(msgFlagName)
		if err != nil {
			return nil, fmt.Errorf(msgFlagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(msgEnvKey)
	if isSet {
		return []string{value}, nil
	}

	return nil, errors.New("Neither " + msgFlagName + " (command line flag) nor " + msgEnvKey +
		" (environment variable) have been set.")
}

func getUserSetVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

func setLogLevel(logLevel string) error {
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%s' : %w", logLevel, err)
		}

		log.SetLevel("", level)

		logger.Infof("logger level set to %s", logLevel)
	}

	return nil
}
