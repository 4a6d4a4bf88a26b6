//go:build windows

package cmd

import "github.com/warpdl/schedreboot/pkg/logger"

func eventLogger(source string) (logger.Logger, error) {
	if source == "" {
		return nil, nil
	}
	l, err := logger.NewEventLogger(source)
	if err != nil {
		return nil, err
	}
	return l, nil
}
