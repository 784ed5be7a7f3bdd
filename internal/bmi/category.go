package bmi

// Category is one of the four BMI bands.
type Category int

const (
	Underweight Category = iota
	NormalWeight
	Overweight
	Obese
)

// Band boundaries; a value equal to a boundary belongs to the higher band.
const (
	normalFrom     = 18.5
	overweightFrom = 25.0
	obeseFrom      = 30.0
)

func (c Category) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case NormalWeight:
		return "Normal Weight"
	case Overweight:
		return "Overweight"
	default:
		return "Obese"
	}
}

// Color is the display color of the band as a hex string.
func (c Category) Color() string {
	switch c {
	case Underweight:
		return "#3498DB"
	case NormalWeight:
		return "#2ECC71"
	case Overweight:
		return "#F39C12"
	default:
		return "#E74C3C"
	}
}

// Classify maps a BMI to its band using half-open intervals.
func Classify(v float64) Category {
	switch {
	case v < normalFrom:
		return Underweight
	case v < overweightFrom:
		return NormalWeight
	case v < obeseFrom:
		return Overweight
	default:
		return Obese
	}
}

// ColorFor is Classify(v).Color().
func ColorFor(v float64) string { return Classify(v).Color() }

// Legend lists the reference ranges shown next to a result.
func Legend() []string {
	return []string{
		"Below 18.5: Underweight",
		"18.5 - 24.9: Normal Weight",
		"25.0 - 29.9: Overweight",
		"30.0+: Obese",
	}
}

// Categories returns all bands in ascending order.
func Categories() []Category {
	return []Category{Underweight, NormalWeight, Overweight, Obese}
}
