package storage

// Project statuses as the dashboard writes them.
const (
	ProjectStatusActive    = "active"
	ProjectStatusPending   = "pending"
	ProjectStatusCompleted = "completed"
	ProjectStatusDelivered = "delivered"
	ProjectStatusArchived  = "archived"
)

// Phase percentage defaults. They intentionally sum to 115, not 100 — these
// are the values the product has always shipped with, do not normalize them.
const (
	DefaultFabPercentage        = 27.0
	DefaultPaintPercentage      = 7.0
	DefaultProductionPercentage = 60.0
	DefaultITPercentage         = 7.0
	DefaultNTCPercentage        = 7.0
	DefaultQCPercentage         = 7.0
)

type Project struct {
	ID              int64    `json:"id"`
	ProjectNumber   string   `json:"project_number"`
	Name            string   `json:"name"`
	TotalHours      *float64 `json:"total_hours"`
	PercentComplete float64  `json:"percent_complete"`
	Status          string   `json:"status"`

	FabPercentage        float64 `json:"fab_percentage"`
	PaintPercentage      float64 `json:"paint_percentage"`
	ProductionPercentage float64 `json:"production_percentage"`
	ITPercentage         float64 `json:"it_percentage"`
	NTCPercentage        float64 `json:"ntc_percentage"`
	QCPercentage         float64 `json:"qc_percentage"`

	FabricationStart *Date `json:"fabrication_start"`
	PaintStart       *Date `json:"paint_start"`
	ProductionStart  *Date `json:"production_start"`
	ITStart          *Date `json:"it_start"`
	NTCTestingDate   *Date `json:"ntc_testing_date"`
	QCStartDate      *Date `json:"qc_start_date"`
	ShipDate         *Date `json:"ship_date"`
	DeliveryDate     *Date `json:"delivery_date"`
}
