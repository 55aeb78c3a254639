package app

import (
	"os"
	"testing"

	"github.com/jvalva/consulta/internal/logger"
)

func TestMain(m *testing.M) {
	// Disable logging during tests to avoid polluting /tmp/consulta-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
