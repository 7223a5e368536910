package domain

// VehicleName is a vehicle display name keyed by locale. The rental platform
// sends the name in several historical shapes; the integrations layer
// normalizes all of them into this single representation.
type VehicleName map[string]string

// GenericVehicleName is displayed when no localized name is available at all.
const GenericVehicleName = "Vehículo"

// nameFallbackOrder after the requested locale.
var nameFallbackOrder = []string{"es", "en", "fr"}

// Display returns the name for the requested locale, falling back through
// es, en, fr and finally a generic placeholder.
func (n VehicleName) Display(locale string) string {
	if name, ok := n[locale]; ok && name != "" {
		return name
	}
	for _, loc := range nameFallbackOrder {
		if name, ok := n[loc]; ok && name != "" {
			return name
		}
	}
	return GenericVehicleName
}
