// Command turbo renders, packs and serves Turbo Stream fragments.
//
// Configuration is read from flags, TURBO_* environment variables and an
// optional .turbo.yml file, in that order of precedence:
//
//	TURBO_KEY         key for deferred stream tokens
//	TURBO_SENSITIVE   encrypt tokens instead of signing them
//	TURBO_ADDR        listen address for serve
//	TURBO_LOG_LEVEL   debug, info, warn or error
//	TURBO_LOG_FORMAT  text or json
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("turbo: command failed")
		os.Exit(1)
	}
}
