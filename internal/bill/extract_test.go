package bill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-advisor/internal/bill"
)

const sampleBillText = `ABC Power Distribution Company
Consumer No: MH123456789
Consumer Name: Ramesh Kumar
Bill Month: March 2024
Billing Date: 15/03/2024
Due Date: 30/03/2024
Previous Reading: 12000
Current Reading: 12450
Total Units: 450
Total Amount: Rs. 2,925.00
`

func TestParse_FullBill(t *testing.T) {
	data := bill.Parse(sampleBillText)
	require.NotNil(t, data)

	assert.Equal(t, "MH123456789", data.ConsumerNo)
	assert.Equal(t, "Ramesh Kumar", data.ConsumerName)
	assert.Equal(t, "March 2024", data.BillMonth)
	assert.Equal(t, "15/03/2024", data.BillingDate)
	assert.Equal(t, "30/03/2024", data.DueDate)
	assert.Equal(t, 450.0, data.MeteredUnits)
	assert.Equal(t, 2925.0, data.TotalAmount)
	assert.Equal(t, 12000, data.PreviousReading)
	assert.Equal(t, 12450, data.CurrentReading)
}

func TestParse_UnitsDerivedFromReadings(t *testing.T) {
	data := bill.Parse(`Consumer No: 42
Previous Reading: 1200
Current Reading: 1530
Total Amount: ₹ 2,145.00
`)

	assert.Equal(t, 330.0, data.MeteredUnits, "missing stated figure falls back to reading delta")
	assert.Equal(t, 2145.0, data.TotalAmount)
}

func TestParse_AmountCurrencyVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"rupee prefix", "Amount Payable: Rs. 1,234.56", 1234.56},
		{"rupee symbol", "Net Amount: ₹ 980.00", 980},
		{"dollar", "Total Bill: $45.20", 45.20},
		{"no currency marker", "Total Amount: 500", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bill.Parse(tt.text)
			assert.Equal(t, tt.want, data.TotalAmount)
		})
	}
}

func TestParse_EmptyTextKeepsDefaults(t *testing.T) {
	data := bill.Parse("")

	assert.Equal(t, "N/A", data.ConsumerNo)
	assert.Equal(t, "N/A", data.ConsumerName)
	assert.Equal(t, "N/A", data.BillMonth)
	assert.Equal(t, "N/A", data.BillingDate)
	assert.Equal(t, "N/A", data.DueDate)
	assert.Zero(t, data.MeteredUnits)
	assert.Zero(t, data.TotalAmount)
	assert.Zero(t, data.PreviousReading)
	assert.Zero(t, data.CurrentReading)
}

func TestParse_AlternatePhrasings(t *testing.T) {
	data := bill.Parse(`Consumer Number: KA-0042-X
For the month of April 2025
Consumption: 312.5 kWh
`)

	assert.Equal(t, "KA-0042-X", data.ConsumerNo)
	assert.Equal(t, "April 2025", data.BillMonth)
	assert.Equal(t, 312.5, data.MeteredUnits)
}
