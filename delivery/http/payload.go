package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shivam970806/VMS/contracts/vendor_service"
	"github.com/shivam970806/VMS/domain"
)

const maxBodyBytes = 1 << 20

// naiveLayout is accepted for timestamps without an offset, read as UTC
const naiveLayout = "2006-01-02T15:04:05"

// decodePayload reads a JSON object, rejects any key outside fields and
// unmarshals the body into dst. Forbidden keys are reported before unknown ones.
func decodePayload(w http.ResponseWriter, r *http.Request, fields vendor_service.FieldSet, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return domain.ErrInvalidPayload.WithMessage("request body could not be read")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return domain.ErrInvalidPayload
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var unknown string
	for _, k := range keys {
		accepted, forbidden := fields.Classify(k)
		if forbidden {
			return domain.ErrForbiddenField.WithField(k)
		}
		if !accepted && unknown == "" {
			unknown = k
		}
	}
	if unknown != "" {
		return domain.ErrUnknownField.WithField(unknown)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return domain.ErrInvalidPayload.WithMessage("invalid value type").WithField(typeErr.Field)
		}
		return domain.ErrInvalidPayload
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parseRating accepts a JSON number only. An absent value yields nil.
func parseRating(raw json.RawMessage) (*decimal.Decimal, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	text := strings.TrimSpace(string(raw))
	if text == "" || isNull(raw) || !(text[0] == '-' || (text[0] >= '0' && text[0] <= '9')) {
		return nil, domain.ErrInvalidRating
	}
	rating, err := decimal.NewFromString(text)
	if err != nil {
		return nil, domain.ErrInvalidRating
	}
	return &rating, nil
}

// parseTimestamp accepts an RFC 3339 string or a timestamp without offset.
// An absent value yields nil.
func parseTimestamp(raw json.RawMessage, field string) (*time.Time, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var text string
	if isNull(raw) || json.Unmarshal(raw, &text) != nil {
		return nil, domain.ErrInvalidTimestamp.WithField(field)
	}

	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.ParseInLocation(naiveLayout, text, time.UTC); err == nil {
		return &t, nil
	}
	return nil, domain.ErrInvalidTimestamp.WithField(field)
}
