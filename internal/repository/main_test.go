//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"pandoro-backend/internal/testutils"

	"github.com/sirupsen/logrus"
)

// TestMain shares one Postgres container across the repository suites and purges it on
// exit or interruption.
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-interrupted
		logrus.WithField("signal", sig.String()).Warn("repository tests interrupted")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	signal.Stop(interrupted)
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
