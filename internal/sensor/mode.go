package sensor

import "errors"

var (
	// ErrPermissionDenied means the user or platform refused orientation access.
	ErrPermissionDenied = errors.New("motion permission denied")
	// ErrUnsupported means the platform has no orientation sensor API.
	ErrUnsupported = errors.New("device orientation unsupported")
)

// Mode is the active input source.
type Mode int

const (
	ModePointer Mode = iota
	ModeOrientation
)

func (m Mode) String() string {
	if m == ModeOrientation {
		return "orientation"
	}
	return "pointer"
}

// Permission is the state of the platform orientation permission.
type Permission int

const (
	// PermissionNotRequired: the platform delivers orientation without a prompt.
	PermissionNotRequired Permission = iota
	PermissionPending
	PermissionGranted
	PermissionDenied
)

// SelectMode picks orientation only on touch capable devices whose
// orientation data is unlocked. Everything else uses the pointer.
func SelectMode(touchCapable bool, p Permission) Mode {
	if !touchCapable {
		return ModePointer
	}
	switch p {
	case PermissionNotRequired, PermissionGranted:
		return ModeOrientation
	default:
		return ModePointer
	}
}
