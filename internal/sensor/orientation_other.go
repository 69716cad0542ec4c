//go:build !js

package sensor

import "context"

type noOrientation struct{}

// PlatformSource returns the orientation API of the running platform.
// Native builds have none, so they always run in pointer mode.
func PlatformSource() OrientationSource { return noOrientation{} }

func (noOrientation) TouchCapable() bool    { return false }
func (noOrientation) NeedsPermission() bool { return false }

func (noOrientation) RequestPermission(context.Context) error { return ErrUnsupported }

func (noOrientation) Listen(func(gamma, beta float64)) (func(), error) {
	return nil, ErrUnsupported
}
