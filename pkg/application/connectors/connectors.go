// Package connectors opens process-wide clients lazily. Client panics when the
// dependency is unreachable at startup.
package connectors

import "giftai/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
