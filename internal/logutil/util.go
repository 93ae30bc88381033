/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logutil

import (
	"fmt"
	"strings"

	"github.com/hyperledger/aries-framework-go/component/log"
)

// LogError logs a failed operation as op=[op] key=[value]... errMsg=[errMsg].
func LogError(logger *log.Log, op, errMsg string, fields ...string) {
	logger.Errorf("op=[%s] %s errMsg=[%s]", op, strings.Join(fields, " "), errMsg)
}

// LogDebug logs progress of an operation as op=[op] key=[value]... msg=[msg].
func LogDebug(logger *log.Log, op, msg string, fields ...string) {
	logger.Debugf("op=[%s] %s msg=[%s]", op, strings.Join(fields, " "), msg)
}

// KV formats one key=[value] field.
func KV(key string, val interface{}) string {
	return fmt.Sprintf("%s=[%v]", key, val)
}
