package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber produces a unique, human-readable order reference of
// the form ORD-YYYYMMDD-XXXXXX. The date prefix keeps numbers sortable and
// recognizable on invoices; the random hex suffix makes collisions within a
// day vanishingly unlikely.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(suffix))
}
