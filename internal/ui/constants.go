package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600
)

// Video information panel sizing
const (
	ThumbnailWidth  float32 = 300
	ThumbnailHeight float32 = 200
)
