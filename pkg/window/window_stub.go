//go:build !cgo

package window

import (
	"context"
	"errors"
)

// Run reports that the window presenter is unavailable without cgo.
func Run(_ context.Context, _ Options) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
