package pass

// PassType is the closed set of port-access pass categories.
type PassType string

const (
	PassTypeDaily     PassType = "daily"
	PassTypeVehicle   PassType = "vehicle"
	PassTypeCrane     PassType = "crane"
	PassTypeTrailer20 PassType = "trailer20"
	PassTypeTrailer40 PassType = "trailer40"
)

// Helper methods for PassType
func (pt PassType) String() string {
	return string(pt)
}

func (pt PassType) IsValid() bool {
	switch pt {
	case PassTypeDaily, PassTypeVehicle, PassTypeCrane, PassTypeTrailer20, PassTypeTrailer40:
		return true
	default:
		return false
	}
}

// IsVehicleClass returns true for pass types issued against a vehicle, which
// require a plate number instead of a personal ID number.
func (pt PassType) IsVehicleClass() bool {
	switch pt {
	case PassTypeVehicle, PassTypeCrane, PassTypeTrailer20, PassTypeTrailer40:
		return true
	default:
		return false
	}
}

// RequiresIDNumber returns true if the pass type needs the holder's ID number.
func (pt PassType) RequiresIDNumber() bool {
	return pt == PassTypeDaily
}

// Label returns the human-readable name used on printed passes and reports.
// Unrecognized values pass through as their raw string.
func (pt PassType) Label() string {
	switch pt {
	case PassTypeDaily:
		return "Daily Pass"
	case PassTypeVehicle:
		return "Vehicle Sticker"
	case PassTypeCrane:
		return "Crane Lorry Vehicle Sticker"
	case PassTypeTrailer20:
		return "Trailer 20/Dump Truck Vehicle Sticker"
	case PassTypeTrailer40:
		return "Trailer 40 Vehicle Sticker"
	default:
		return string(pt)
	}
}

// GetAllPassTypes returns all valid pass types
func GetAllPassTypes() []PassType {
	return []PassType{
		PassTypeDaily,
		PassTypeVehicle,
		PassTypeCrane,
		PassTypeTrailer20,
		PassTypeTrailer40,
	}
}
