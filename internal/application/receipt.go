package application

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"ircportal/internal/domain"
)

// maxReceiptBytes caps the decoded receipt image.
const maxReceiptBytes = 5 << 20

// checkReceipt accepts a raw base64 payload or a data URL and requires the
// decoded bytes to be an image no larger than maxReceiptBytes.
func checkReceipt(payload string) error {
	if i := strings.Index(payload, ","); strings.HasPrefix(payload, "data:") && i >= 0 {
		payload = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return domain.NewValidationError("receiptImage must be base64 encoded")
	}
	if len(data) > maxReceiptBytes {
		return domain.NewValidationError("receiptImage must be less than 5MB")
	}
	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return domain.NewValidationError("receiptImage must be an image")
	}
	return nil
}
