//go:build !windows

package cmd

import (
	"context"

	"github.com/warpdl/schedreboot/pkg/logger"
)

func runAsService(func(context.Context) error, logger.Logger) (bool, error) {
	return false, nil
}
