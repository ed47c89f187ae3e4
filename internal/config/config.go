package config

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Ring widget geometry, measured from the bottom-right corner
	RingMargin        = 40
	TimeRingRadius    = 90
	WeatherRingRadius = 56
	RingThickness     = 22
	MarkerRadius      = 7
	IconRadius        = 9

	// Snapshot button
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 44

	// Ring knob spring
	KnobFrequency = 6.0
	KnobDamping   = 0.8

	TPS = 60
)
