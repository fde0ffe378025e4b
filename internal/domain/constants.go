package domain

// Quality bounds
const (
	MinQuality       = 0
	MaxQuality       = 50
	LegendaryQuality = 80
)

// Name tokens used for classification
const (
	ConjuredToken   = "Conjured"
	PrefixAged      = "Aged"
	PrefixAdmission = "Backstage passes"
	PrefixLegendary = "Sulfuras"
)

// Admission thresholds (days before the event)
const (
	AdmissionFarThreshold  = 11 // at or above: +1 per day
	AdmissionNearThreshold = 6  // below: +3 per day
)
