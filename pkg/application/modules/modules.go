// Package modules runs long-lived parts of the process inside one errgroup.
package modules

import "giftai/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
