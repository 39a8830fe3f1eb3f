// Package lifecycle holds the ordered, pure transformation steps applied to a
// purchase order before it is persisted.
package lifecycle

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shivam970806/VMS/domain"
)

const poDateLayout = "20060102"

// FormatPONumber renders {vendor_code}-{YYYYMMDD}-{seq:04d}
func FormatPONumber(vendorCode string, day time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", vendorCode, day.Format(poDateLayout), seq)
}

// ParsePOSequence extracts the trailing sequence number from a PO number.
// Vendor codes may themselves contain dashes so the number is read from the right.
func ParsePOSequence(poNumber string) (int, error) {
	parts := strings.Split(poNumber, "-")
	if len(parts) < 3 {
		return 0, domain.ErrMalformedIdentifier.WithMessage(fmt.Sprintf("malformed purchase order number %q", poNumber))
	}

	datePart := parts[len(parts)-2]
	if len(datePart) != len(poDateLayout) {
		return 0, domain.ErrMalformedIdentifier.WithMessage(fmt.Sprintf("malformed date in purchase order number %q", poNumber))
	}
	if _, err := time.Parse(poDateLayout, datePart); err != nil {
		return 0, domain.ErrMalformedIdentifier.WithMessage(fmt.Sprintf("malformed date in purchase order number %q", poNumber))
	}

	seq, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || seq < 1 {
		return 0, domain.ErrMalformedIdentifier.WithMessage(fmt.Sprintf("malformed sequence in purchase order number %q", poNumber))
	}

	return seq, nil
}

// NextPONumber returns the identifier following lastPONumber for the vendor.
// An empty lastPONumber starts the vendor at sequence 1.
func NextPONumber(vendorCode, lastPONumber string, now time.Time) (string, error) {
	seq := 1
	if lastPONumber != "" {
		last, err := ParsePOSequence(lastPONumber)
		if err != nil {
			return "", err
		}
		seq = last + 1
	}
	return FormatPONumber(vendorCode, now, seq), nil
}
