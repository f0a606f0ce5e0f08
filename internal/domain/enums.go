package domain

// Source records how a puzzle entered the system.
type Source int

const (
	SourceManual Source = iota // typed in row by row
	SourceImage                // recognized from a photographed grid
)

// String returns the storage/display name of the source.
func (s Source) String() string {
	switch s {
	case SourceImage:
		return "image"
	default:
		return "manual"
	}
}

// ParseSource maps a name back to a Source; unknown names default to manual.
func ParseSource(s string) Source {
	if s == "image" {
		return SourceImage
	}
	return SourceManual
}
