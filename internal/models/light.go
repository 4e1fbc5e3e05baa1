package models

// Light statuses.
const (
	StatusOn  = "on"
	StatusOff = "off"
)

// Allowed colors. ColorWhite is the default for a freshly added light.
const (
	ColorWhite  = "white"
	ColorBlue   = "blue"
	ColorRed    = "red"
	ColorGreen  = "green"
	ColorYellow = "yellow"
)

// Brightness bounds (inclusive).
const (
	BrightnessMin = 0
	BrightnessMax = 100
)

// Light is a single simulated fixture.
type Light struct {
	ID         int    `json:"id"`
	Status     string `json:"status"`     // on | off
	Brightness int    `json:"brightness"` // 0..100
	Color      string `json:"color"`      // white | blue | red | green | yellow
}

// NewLight returns a light with default state: off, brightness 0, white.
func NewLight(id int) Light {
	return Light{
		ID:         id,
		Status:     StatusOff,
		Brightness: BrightnessMin,
		Color:      ColorWhite,
	}
}

// ValidColor reports whether c is one of the allowed colors.
func ValidColor(c string) bool {
	switch c {
	case ColorWhite, ColorBlue, ColorRed, ColorGreen, ColorYellow:
		return true
	}
	return false
}
