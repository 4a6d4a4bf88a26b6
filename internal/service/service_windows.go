//go:build windows

// Package service runs a schedule under the Windows Service Control Manager
// so that a service stop, or the system shutting down, cancels the monitor.
package service

import (
	"context"
	"errors"

	"github.com/warpdl/schedreboot/pkg/logger"
	"golang.org/x/sys/windows/svc"
)

const acceptedCommands = svc.AcceptStop | svc.AcceptShutdown

// RunFunc runs the schedule until ctx is cancelled.
type RunFunc func(ctx context.Context) error

// Handler implements svc.Handler around a RunFunc.
type Handler struct {
	run RunFunc
	log logger.Logger
}

func NewHandler(run RunFunc, log logger.Logger) *Handler {
	return &Handler{run: run, log: log}
}

// Execute implements svc.Handler. Start arguments are ignored; the schedule
// comes from the service's configured command line.
//
//	StartPending -> Running -> StopPending -> Stopped
func (h *Handler) Execute(_ []string, requests <-chan svc.ChangeRequest, status chan<- svc.Status) (bool, uint32) {
	status <- svc.Status{State: svc.StartPending}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- h.run(ctx)
	}()

	status <- svc.Status{State: svc.Running, Accepts: acceptedCommands}
	h.log.Info("Service running")

	for {
		select {
		case err := <-done:
			return h.stopped(status, err)
		case req, ok := <-requests:
			if !ok {
				cancel()
				return h.stopped(status, <-done)
			}
			switch req.Cmd {
			case svc.Interrogate:
				status <- req.CurrentStatus
			case svc.Stop, svc.Shutdown:
				h.log.Info("Service stopping")
				status <- svc.Status{State: svc.StopPending}
				cancel()
				return h.stopped(status, <-done)
			}
		}
	}
}

func (h *Handler) stopped(status chan<- svc.Status, err error) (bool, uint32) {
	status <- svc.Status{State: svc.Stopped}
	if err != nil && !errors.Is(err, context.Canceled) {
		h.log.Error("Service stopped: %v", err)
		return false, 1
	}
	h.log.Info("Service stopped")
	return false, 0
}

// IsService reports whether the process was started by the SCM.
func IsService() (bool, error) {
	return svc.IsWindowsService()
}

// Run runs h as the named service and blocks until it stops.
func Run(name string, h *Handler) error {
	return svc.Run(name, h)
}
