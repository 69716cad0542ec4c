// Package platform reaches the host environment: dialogs, file export
// and the clipboard. Native builds use zenity; the wasm build uses the DOM.
package platform

import "errors"

// ErrUnavailable means the host has no such facility.
var ErrUnavailable = errors.New("not available on this platform")

const appTitle = "Virtual Name Card"
