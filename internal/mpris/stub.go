//go:build !linux

package mpris

import (
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/playback"
)

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ playback.Handle, _ logrus.FieldLogger) (*Adapter, error) {
	return &Adapter{}, nil
}

// Requests returns nil; nothing is ever received.
func (a *Adapter) Requests() <-chan Request {
	return nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
