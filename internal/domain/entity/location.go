package entity

// Ubicaciones de venta. El stock y las ventas se particionan por ubicación;
// el catálogo de productos es compartido.
const (
	LocationPKNS    = "pkns"
	LocationKipmall = "kipmall"
	LocationSpare   = "spare"
)

// Locations conjunto cerrado de ubicaciones conocidas. Al crear un producto
// se crea una fila de stock en cada una.
var Locations = []string{LocationPKNS, LocationKipmall, LocationSpare}

// IsValidLocation indica si la ubicación pertenece al conjunto conocido.
func IsValidLocation(loc string) bool {
	for _, l := range Locations {
		if l == loc {
			return true
		}
	}
	return false
}
