package domain

import (
	"time"

	"github.com/google/uuid"
)

type ScanOutcome string

const (
	ScanBound                    ScanOutcome = "bound"
	ScanAccepted                 ScanOutcome = "accepted"
	ScanRejectedOutOfRange       ScanOutcome = "rejected-out-of-range"
	ScanRejectedStoreUnavailable ScanOutcome = "rejected-store-unavailable"
)

// CountsAsCheckIn reports whether the outcome is a valid patrol check-in.
func (o ScanOutcome) CountsAsCheckIn() bool {
	return o == ScanBound || o == ScanAccepted
}

// ScanEvent is immutable once stored.
type ScanEvent struct {
	ID              uuid.UUID   `json:"id"`
	QRID            string      `json:"qr_id"`
	AreaID          string      `json:"area_id"`
	GuardID         uuid.UUID   `json:"guard_id"`
	GuardEmail      string      `json:"guard_email"`
	OriginalContent string      `json:"original_content"`
	DeviceLat       float64     `json:"device_lat"`
	DeviceLng       float64     `json:"device_lng"`
	DistanceMeters  *float64    `json:"distance_meters,omitempty"`
	Outcome         ScanOutcome `json:"outcome"`
	Reason          string      `json:"reason,omitempty"`
	Address         string      `json:"address,omitempty"`
	ScannedAt       time.Time   `json:"scanned_at"`
}

// ScanRequest carries pointer coordinates so an omitted lat or lng is
// rejected instead of binding a location at (0, 0).
type ScanRequest struct {
	QRContent  string   `json:"qr_content" validate:"required,max=2048"`
	GuardEmail string   `json:"guard_email" validate:"required,email"`
	Lat        *float64 `json:"lat" validate:"required,lat"`
	Lng        *float64 `json:"lng" validate:"required,lng"`
}

type ScanResult struct {
	EventID        uuid.UUID   `json:"event_id"`
	QRID           string      `json:"qr_id"`
	Outcome        ScanOutcome `json:"outcome"`
	DistanceMeters *float64    `json:"distance_meters,omitempty"`
	WithinRadius   bool        `json:"within_radius"`
	RadiusMeters   float64     `json:"radius_meters"`
	Reason         string      `json:"reason,omitempty"`
	Address        string      `json:"address,omitempty"`
	ScannedAt      time.Time   `json:"scanned_at"`
}

type ValidateRequest struct {
	QRContent string   `json:"qr_content" validate:"required,max=2048"`
	Lat       *float64 `json:"lat,omitempty" validate:"omitempty,lat"`
	Lng       *float64 `json:"lng,omitempty" validate:"omitempty,lng"`
}

type ValidateResult struct {
	QRID           string    `json:"qr_id"`
	AreaID         string    `json:"area_id"`
	Label          string    `json:"label"`
	Bound          bool      `json:"bound"`
	Coordinates    *GeoPoint `json:"coordinates,omitempty"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
	WithinRadius   *bool     `json:"within_radius,omitempty"`
	RadiusMeters   float64   `json:"radius_meters"`
}

// ScanFilter narrows history listings; zero values mean "any".
type ScanFilter struct {
	AreaID  string
	GuardID uuid.UUID
	Page    int
	Limit   int
}

type ListScansResponse struct {
	Scans []*ScanEvent `json:"scans"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Total int64        `json:"total"`
}
