package repository

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/birdfeed/birdfeed/domain"
)

const (
	timeFormat = time.RFC3339Nano

	PageMinNum     = 1
	PageMaxNum     = 50
	DefaultPageNum = 10
)

// EncodeCursor packs the (createdAt, id) position of the last item of a
// page into an opaque string. Callers must pass it back unchanged.
func EncodeCursor(c domain.Cursor) string {
	raw := c.CreatedAt.UTC().Format(timeFormat) + "," + c.ID
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor unpacks a cursor produced by EncodeCursor.
// Returns ErrBadParamInput for anything that doesn't round-trip.
func DecodeCursor(encoded string) (domain.Cursor, error) {
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return domain.Cursor{}, domain.ErrBadParamInput
	}

	createdAtStr, id, found := strings.Cut(string(byt), ",")
	if !found || id == "" {
		return domain.Cursor{}, domain.ErrBadParamInput
	}

	createdAt, err := time.Parse(timeFormat, createdAtStr)
	if err != nil {
		return domain.Cursor{}, domain.ErrBadParamInput
	}

	return domain.Cursor{ID: id, CreatedAt: createdAt}, nil
}

// PageVerify clamps a requested page size into the allowed range.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageNum
	}
	if *num < PageMinNum {
		*num = PageMinNum
	}
	if *num > PageMaxNum {
		*num = PageMaxNum
	}
}
