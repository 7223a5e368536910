package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleName_Display(t *testing.T) {
	name := VehicleName{"es": "Furgoneta camper", "en": "Camper van"}

	assert.Equal(t, "Camper van", name.Display("en"))
	assert.Equal(t, "Furgoneta camper", name.Display("es"))

	// Неизвестная локаль откатывается к испанскому
	assert.Equal(t, "Furgoneta camper", name.Display("fr"))
	assert.Equal(t, "Furgoneta camper", name.Display(""))
}

func TestVehicleName_Display_FallbackChain(t *testing.T) {
	onlyFR := VehicleName{"fr": "Fourgon aménagé"}
	assert.Equal(t, "Fourgon aménagé", onlyFR.Display("es"))

	empty := VehicleName{}
	assert.Equal(t, GenericVehicleName, empty.Display("es"))

	var nilName VehicleName
	assert.Equal(t, GenericVehicleName, nilName.Display("en"))
}
