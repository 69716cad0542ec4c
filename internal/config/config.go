package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640
	TPS          = 60

	// Card dimensions
	CardWidth       = 320
	CardHeight      = 480
	CardPerspective = 1000

	// Button dimensions on the back face, card-local
	ButtonWidth  = 256
	ButtonHeight = 40
	ButtonX      = 32
	AddContactY  = 330
	CopyEmailY   = 386

	// Avatar circle on the front face, card-local
	AvatarRadius  = 64
	AvatarCenterY = 150

	// Ambient tilt in degrees per unit of signal
	DesktopTilt = 10
	MobileTilt  = 20
	SignalTilt  = 15

	// Orientation mapping in degrees
	OrientationRange = 45
	OrientationRestY = 45

	// Smoothing filter: mass / stiffness, damping derived for critical damping
	SmoothMass      = 1.0
	SmoothStiffness = 120.0

	// Flip spring
	FlipStiffness = 260.0
	FlipDamping   = 20.0

	// Touch drag tilt
	DragTiltPerPixel = 0.2
	DragTiltMax      = 30.0

	// Gestures
	SwipeMinVelocity = 0.3 // px per ms
	SwipeMinDistance = 50.0
	TapMaxDistance   = 10.0
	TapMaxDuration   = 300 * time.Millisecond

	// Easter egg
	EggTaps        = 5
	EggWindow      = 2 * time.Second
	EggRevertAfter = 5 * time.Second
	ScatterSpan    = 500.0
	ScatterSpin    = 360.0

	// Particle engine
	AmbientParticles   = 80
	FireworkCooldown   = 60 // frames
	FireworkSparks     = 50
	FireworkRiseSpeed  = 5.0
	FireworkGravity    = 0.05
	RecycleMargin      = 50.0
	StatusMessageTicks = 4 * TPS
)
