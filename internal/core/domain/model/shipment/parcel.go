package shipment

// Parcel is the platform-native package shape: flat dimensions and weight.
type Parcel struct {
	Length         float64
	Width          float64
	Height         float64
	DimensionsUnit string
	Weight         float64
	WeightUnit     string
}

// Dimensions is the provider-native package dimensions shape.
type Dimensions struct {
	Unit   string
	Length float64
	Width  float64
	Height float64
}

// Weight is the provider-native package weight shape.
type Weight struct {
	Value float64
	Unit  string
}

// Package is the provider-native package shape.
type Package struct {
	Weight     Weight
	Dimensions Dimensions
}

// TransformParcels maps platform parcels to provider packages one-to-one,
// preserving order.
func TransformParcels(parcels []Parcel) []Package {
	packages := make([]Package, len(parcels))
	for i, parcel := range parcels {
		packages[i] = Package{
			Weight: Weight{
				Value: parcel.Weight,
				Unit:  parcel.WeightUnit,
			},
			Dimensions: Dimensions{
				Unit:   parcel.DimensionsUnit,
				Length: parcel.Length,
				Width:  parcel.Width,
				Height: parcel.Height,
			},
		}
	}
	return packages
}
