// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// interruptSignals defines the default signals to catch in order to do a proper
// shutdown.
var interruptSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// interruptListener returns a context that is cancelled on the first
// interrupt signal or when parent is done.  Repeated signals are logged so
// the user knows the shutdown is in progress and the process is not hung.
func interruptListener(parent context.Context, log *zap.Logger) context.Context {
	ctx, cancel := context.WithCancel(parent)

	interruptChannel := make(chan os.Signal, 1)
	signal.Notify(interruptChannel, interruptSignals...)

	go func() {
		defer signal.Stop(interruptChannel)

		select {
		case sig := <-interruptChannel:
			log.Info("Received signal, shutting down...", zap.String("signal", sig.String()))
			cancel()
		case <-ctx.Done():
			return
		}

		for {
			select {
			case sig := <-interruptChannel:
				log.Info("Received signal, already shutting down...", zap.String("signal", sig.String()))
			case <-parent.Done():
				return
			}
		}
	}()

	return ctx
}
