package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy-advisor/internal/api/models"
	"energy-advisor/internal/bill"
	"energy-advisor/internal/logging"
)

// maxBillSize bounds uploaded bill PDFs (10 MiB).
const maxBillSize = 10 << 20

// BillHandler handles bill-extraction requests
type BillHandler struct {
	log *logging.Logger
}

// NewBillHandler creates a new bill handler
func NewBillHandler(log *logging.Logger) *BillHandler {
	return &BillHandler{log: log.WithComponent("bill_handler")}
}

// Extract handles POST /api/v1/bill/extract (multipart PDF)
func (h *BillHandler) Extract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_FILE",
				Message: "multipart field 'file' with a bill PDF is required",
			},
		})
		return
	}
	if fileHeader.Size > maxBillSize {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "FILE_TOO_LARGE",
				Message: "bill PDF exceeds the 10 MiB limit",
			},
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_FILE",
				Message: err.Error(),
			},
		})
		return
	}
	defer f.Close()

	// The PDF reader needs random access, so buffer the upload.
	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_FILE",
				Message: err.Error(),
			},
		})
		return
	}

	billData, text, err := bill.Extract(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EXTRACTION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	h.log.LogBillExtraction(billData.ConsumerNo, billData.MeteredUnits)

	resp := models.BillExtractResponse{Bill: *billData}
	if c.Query("include_text") == "true" {
		resp.RawText = text
	}
	c.JSON(http.StatusOK, resp)
}
