//go:build windows

package cmd

import (
	"context"

	"github.com/warpdl/schedreboot/internal/service"
	"github.com/warpdl/schedreboot/pkg/logger"
)

const serviceName = "schedreboot"

// runAsService hands run to the SCM when the process was started as a
// service. It reports false for an interactive launch.
func runAsService(run func(context.Context) error, l logger.Logger) (bool, error) {
	ok, err := service.IsService()
	if err != nil {
		l.Debug("Unable to detect service mode: %v", err)
		return false, nil
	}
	if !ok {
		return false, nil
	}
	return true, service.Run(serviceName, service.NewHandler(run, l))
}
