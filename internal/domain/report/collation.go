package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/kiosk-sales/internal/domain/entity"
)

// DefaultLocale idioma con el que se ordenan los nombres de tienda si no se indica otro.
var DefaultLocale = language.Korean

// sortByStore devuelve una copia de records ordenada de forma estable por
// store_name según las reglas de collation del idioma; los empates del collator
// se resuelven por bytes.
// collate.Collator no es seguro para uso concurrente: se crea uno por llamada.
func sortByStore(records []entity.SalesRecord, locale language.Tag) []entity.SalesRecord {
	sorted := make([]entity.SalesRecord, len(records))
	copy(sorted, records)

	col := collate.New(locale)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := col.CompareString(sorted[i].StoreName, sorted[j].StoreName); c != 0 {
			return c < 0
		}
		// Nombres distintos que el collator considera iguales deben quedar contiguos.
		return sorted[i].StoreName < sorted[j].StoreName
	})
	return sorted
}
