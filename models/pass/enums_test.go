package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassTypeIsValid(t *testing.T) {
	for _, pt := range GetAllPassTypes() {
		assert.True(t, pt.IsValid(), "expected %s to be valid", pt)
	}
	assert.False(t, PassType("weekly").IsValid())
	assert.False(t, PassType("").IsValid())
}

func TestPassTypeLabels(t *testing.T) {
	assert.Equal(t, "Daily Pass", PassTypeDaily.Label())
	assert.Equal(t, "Vehicle Sticker", PassTypeVehicle.Label())
	assert.Equal(t, "Crane Lorry Vehicle Sticker", PassTypeCrane.Label())
	assert.Equal(t, "Trailer 20/Dump Truck Vehicle Sticker", PassTypeTrailer20.Label())
	assert.Equal(t, "Trailer 40 Vehicle Sticker", PassTypeTrailer40.Label())

	// Unrecognized values pass through as their raw string.
	assert.Equal(t, "weekly", PassType("weekly").Label())
}

func TestPassTypeFieldRequirements(t *testing.T) {
	assert.True(t, PassTypeDaily.RequiresIDNumber())
	assert.False(t, PassTypeDaily.IsVehicleClass())

	for _, pt := range []PassType{PassTypeVehicle, PassTypeCrane, PassTypeTrailer20, PassTypeTrailer40} {
		assert.True(t, pt.IsVehicleClass(), "expected %s to be vehicle class", pt)
		assert.False(t, pt.RequiresIDNumber())
	}
}
