package model

// BillData holds the fields extracted from an electricity-bill PDF.
// String fields default to "N/A" and numeric fields to 0 when a pattern
// does not match; extraction is best effort.
type BillData struct {
	ConsumerNo   string  `json:"consumer_no"`
	ConsumerName string  `json:"consumer_name"`
	BillMonth    string  `json:"bill_month"`
	BillingDate  string  `json:"billing_date"`
	DueDate      string  `json:"due_date"`
	MeteredUnits float64 `json:"metered_units"`
	TotalAmount  float64 `json:"total_amount"`

	PreviousReading int `json:"previous_reading"`
	CurrentReading  int `json:"current_reading"`
}
