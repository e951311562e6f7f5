//go:build windows

// Package stderr provides a no-op implementation for Windows.
// Windows audio libraries don't produce the same stderr noise as ALSA.
package stderr

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Forward is a no-op on Windows.
func Forward(logrus.FieldLogger) {}

// Stop is a no-op on Windows.
func Stop() {}
