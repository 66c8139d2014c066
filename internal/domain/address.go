package domain

// GeoPoint is a latitude/longitude pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Address is a postal address embedded in user and rider documents.
// Nothing enforces that at most one address per account is the default.
type Address struct {
	HouseNumber string   `bson:"houseNumber,omitempty" json:"houseNumber,omitempty"`
	Floor       string   `bson:"floor,omitempty" json:"floor,omitempty"`
	Area        string   `bson:"area" json:"area"`
	Landmark    string   `bson:"landmark,omitempty" json:"landmark,omitempty"`
	Location    GeoPoint `bson:"location" json:"location"`
	IsDefault   bool     `bson:"isDefault" json:"isDefault"`
}
