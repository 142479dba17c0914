package domain

import (
	"time"

	"github.com/google/uuid"
)

// QRLocation is the single patrol point of an area. Coordinates stay nil
// until the first successful scan binds them.
type QRLocation struct {
	ID           string     `json:"id"`
	AreaID       string     `json:"area_id"`
	Label        string     `json:"label"`
	SupervisorID uuid.UUID  `json:"supervisor_id"`
	Coordinates  *GeoPoint  `json:"coordinates,omitempty"`
	BoundAt      *time.Time `json:"bound_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (l *QRLocation) Bound() bool { return l.Coordinates != nil }

type CreateQRLocationResponse struct {
	Location *QRLocation `json:"location"`
	Created  bool        `json:"created"`
}

type ListQRLocationsResponse struct {
	Locations []*QRLocation `json:"locations"`
	Page      int           `json:"page"`
	Limit     int           `json:"limit"`
	Total     int64         `json:"total"`
}
