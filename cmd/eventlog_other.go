//go:build !windows

package cmd

import "github.com/warpdl/schedreboot/pkg/logger"

// eventLogger is a no-op outside Windows; --event-source is ignored.
func eventLogger(string) (logger.Logger, error) {
	return nil, nil
}
