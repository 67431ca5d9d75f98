package entity

import "time"

// StockEntry representa el stock actual de un producto en una ubicación
// (una fila por producto+ubicación, clave compuesta única).
// Invariante: Quantity nunca es negativa; sólo la mutan el commit/void de
// ventas y el ajuste manual de inventario.
type StockEntry struct {
	ProductID   string
	Location    string
	Quantity    int
	LastUpdated time.Time
}
