package render

import (
	"context"
	"time"

	"github.com/furqanmax/Simple-POS/internal/format"
	"github.com/furqanmax/Simple-POS/internal/models"
)

// Document is everything a driver needs to emit one invoice: the order
// snapshot, the template/business metadata, and the resolved layout
// configuration. Drivers derive layout decisions from the config through a
// format.Engine; they never reach back into the database.
type Document struct {
	Order       models.Order
	Items       []models.OrderItem
	Business    models.BusinessInfo
	Header      models.TemplateHeader
	Footer      models.TemplateFooter
	Logo        []byte // optional PNG bytes
	Currency    string
	QRPayloads  []string // contents to encode, capped by the config
	Config      format.LayoutConfig
	GeneratedAt time.Time
}

// Driver renders a Document into final output bytes (PDF).
type Driver interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// ForConfig picks the driver matching the config's category.
func ForConfig(cfg format.LayoutConfig) Driver {
	if cfg.Size.IsThermal() {
		return &ThermalDriver{}
	}
	return &PaperDriver{}
}
