package sales

import (
	"fmt"
	"strings"
	"time"
)

// GenerateSaleNumber construye el número legible de venta:
// {3 primeras letras de la ubicación en mayúscula}-{YYYYMMDD}-{últimos 4
// dígitos de epoch millis}. El sufijo temporal es un token best-effort, no
// una garantía: el índice único de sale_number rechaza la colisión y el
// coordinador reintenta con un sufijo fresco.
func GenerateSaleNumber(location string, now time.Time) string {
	prefix := strings.ToUpper(location)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	millis := fmt.Sprintf("%d", now.UnixMilli())
	suffix := millis[len(millis)-4:]
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}
