// Package bill extracts fields from electricity-bill PDFs by pattern
// matching over the document text. Extraction is best effort: a field
// whose pattern never matches keeps its "N/A"/zero default, and callers
// get whatever could be recognized.
package bill

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"energy-advisor/internal/model"
)

// Field patterns compiled once at package init. The layouts these target
// are the common Indian utility bill formats.
var (
	reConsumerNo  = regexp.MustCompile(`(?i)Consumer\s*(?:No|Number|ID)[:\s]*([A-Z0-9\-]+)`)
	reName        = regexp.MustCompile(`(?i)(?:Consumer\s*)?Name[:\s]*([A-Za-z\s.]+)(?:\n|Consumer)`)
	reBillMonth   = regexp.MustCompile(`(?i)(?:Bill(?:ing)?\s*(?:Period|Month|Date)|For\s*the\s*(?:month|period)\s*of)[:\s]*([A-Za-z]+\s*\d{4}|\d{1,2}/\d{4})`)
	reBillingDate = regexp.MustCompile(`(?i)Bill(?:ing)?\s*Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	reDueDate     = regexp.MustCompile(`(?i)Due\s*Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	reUnits       = regexp.MustCompile(`(?i)(?:Total\s*)?(?:Units?|Consumption|kWh)[:\s]*(\d+(?:\.\d+)?)`)
	reAmount      = regexp.MustCompile(`(?i)(?:Total\s*(?:Amount|Bill)|Amount\s*Payable|Net\s*Amount)[:\s]*(?:Rs\.?|₹|\$)?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	rePrevReading = regexp.MustCompile(`(?i)Previous\s*Reading[:\s]*(\d+)`)
	reCurrReading = regexp.MustCompile(`(?i)Current\s*Reading[:\s]*(\d+)`)
)

const fieldUnknown = "N/A"

// Parse extracts bill fields from already-extracted document text.
// Pure and deterministic; the PDF plumbing lives in ExtractText.
func Parse(text string) *model.BillData {
	data := &model.BillData{
		ConsumerNo:   fieldUnknown,
		ConsumerName: fieldUnknown,
		BillMonth:    fieldUnknown,
		BillingDate:  fieldUnknown,
		DueDate:      fieldUnknown,
	}

	if m := reConsumerNo.FindStringSubmatch(text); m != nil {
		data.ConsumerNo = strings.TrimSpace(m[1])
	}
	if m := reName.FindStringSubmatch(text); m != nil {
		data.ConsumerName = strings.TrimSpace(m[1])
	}
	if m := reBillMonth.FindStringSubmatch(text); m != nil {
		data.BillMonth = strings.TrimSpace(m[1])
	}
	if m := reBillingDate.FindStringSubmatch(text); m != nil {
		data.BillingDate = strings.TrimSpace(m[1])
	}
	if m := reDueDate.FindStringSubmatch(text); m != nil {
		data.DueDate = strings.TrimSpace(m[1])
	}
	if m := reUnits.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			data.MeteredUnits = v
		}
	}
	if m := reAmount.FindStringSubmatch(text); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			data.TotalAmount = v
		}
	}
	if m := rePrevReading.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			data.PreviousReading = v
		}
	}
	if m := reCurrReading.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			data.CurrentReading = v
		}
	}

	// Units may be absent as a stated figure but derivable from readings.
	if data.MeteredUnits == 0 && data.CurrentReading > 0 {
		data.MeteredUnits = float64(data.CurrentReading - data.PreviousReading)
	}

	return data
}

// ExtractText pulls the plain text out of a PDF.
func ExtractText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return sb.String(), nil
}

// Extract reads a PDF and parses bill fields from it, returning both the
// structured fields and the raw text for display.
func Extract(r io.ReaderAt, size int64) (*model.BillData, string, error) {
	text, err := ExtractText(r, size)
	if err != nil {
		return nil, "", err
	}
	return Parse(text), text, nil
}

// ExtractFile is Extract for a PDF on disk.
func ExtractFile(path string) (*model.BillData, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, "", err
	}
	return Extract(f, info.Size())
}
