package analysis

import "fmt"

// RowReason identifies the constraint a raw appliance row violated.
// Keep these values stable; they are returned verbatim in API responses.
type RowReason string

const (
	ReasonMissingName        RowReason = "MissingName"
	ReasonNonPositiveWattage RowReason = "NonPositiveWattage"
	ReasonHoursOutOfRange    RowReason = "HoursOutOfRange"
	ReasonNonIntegerQuantity RowReason = "NonIntegerQuantity"
	ReasonQuantityTooSmall   RowReason = "QuantityTooSmall"
)

// RowError reports one rejected input row. Rejected rows never abort the
// batch; they are collected and returned alongside the valid records.
type RowError struct {
	Index   int       `json:"index"`
	Reason  RowReason `json:"reason"`
	Message string    `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Index, e.Reason, e.Message)
}

// ConfigError represents an invalid engine configuration value, such as a
// non-positive rate. It is fatal for the call that supplied it.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for %s: %s", e.Field, e.Message)
}
