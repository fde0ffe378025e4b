package shop

// Format strings used with fmt.Errorf for detailed error messages
const (
	ErrFmtNilList           = "%w: item list is nil"
	ErrFmtNilItem           = "%w: item at index %d is nil"
	ErrFmtLegendaryQuality  = "%w: %q has quality %d, legendary items must have %d"
	ErrFmtQualityOutOfRange = "%w: %q has quality %d, must be between %d and %d"
)
