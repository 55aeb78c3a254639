package modals

import (
	"os"
	"testing"

	"github.com/jvalva/consulta/internal/logger"
)

func TestMain(m *testing.M) {
	// Disable logging during tests to avoid polluting /tmp/consulta-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	// Initialize modal constants for tests
	ModalWidth = 80
	ModalWidthWide = 100
	ModalInputWidth = 72
	ModalInputCharLimit = 256

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
