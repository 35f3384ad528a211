package player

import "go.uber.org/zap"

// RotationStyle controls how a sprite's direction affects its rendering.
type RotationStyle int

const (
	// RotationNormal turns the costume to follow the direction.
	RotationNormal RotationStyle = iota
	// RotationLeftRight only mirrors the costume horizontally when the
	// sprite faces left.
	RotationLeftRight
	// RotationNone renders the costume upright regardless of direction.
	RotationNone
)

func (rs RotationStyle) String() string {
	switch rs {
	case RotationLeftRight:
		return "left-right"
	case RotationNone:
		return "don't rotate"
	default:
		return "all around"
	}
}

// ParseRotationStyle maps the spellings found in project files to a
// RotationStyle. Both the older ("normal", "leftRight", "none") and the
// newer ("all around", "left-right", "don't rotate") names are
// accepted. Anything else is reported and treated as RotationNormal.
func ParseRotationStyle(s string) RotationStyle {
	switch s {
	case "normal", "all around":
		return RotationNormal
	case "leftRight", "left-right":
		return RotationLeftRight
	case "none", "don't rotate":
		return RotationNone
	}
	logger.With(zap.String("style", s)).Warn("Unknown rotation style - defaulting to normal")
	return RotationNormal
}
