package kernel

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/mehrab1899/ats-backend/pkg/errx"
)

var pageErrRegistry = errx.NewRegistry("PAGINATION")

var (
	codeMalformedCursor = pageErrRegistry.Register("MALFORMED_CURSOR", errx.TypeValidation, http.StatusBadRequest, "Malformed pagination cursor")
	codeInvalidPageSize = pageErrRegistry.Register("INVALID_PAGE_SIZE", errx.TypeValidation, http.StatusBadRequest, "Page size must not be negative")
)

func ErrMalformedCursor() *errx.Error { return pageErrRegistry.New(codeMalformedCursor) }
func ErrInvalidPageSize() *errx.Error { return pageErrRegistry.New(codeInvalidPageSize) }

const (
	// DefaultPageSize applies when neither first nor last is given.
	DefaultPageSize = 10
	// MaxPageSize caps any requested window.
	MaxPageSize = 100
)

// Cursor identifies the boundary record of a page by its ordering key.
type Cursor struct {
	At time.Time
	ID string
}

// Encode renders the cursor as an opaque base64 string of
// "<RFC3339Nano timestamp>|<id>".
func (c Cursor) Encode() string {
	raw := c.At.UTC().Format(time.RFC3339Nano) + "|" + c.ID
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an opaque cursor produced by Encode.
func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrMalformedCursor().WithDetail("cursor", s)
	}
	at, id, ok := strings.Cut(string(raw), "|")
	if !ok || id == "" {
		return Cursor{}, ErrMalformedCursor().WithDetail("cursor", s)
	}
	ts, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Cursor{}, ErrMalformedCursor().WithDetail("cursor", s)
	}
	return Cursor{At: ts, ID: id}, nil
}

// CursorArgs are the relay-style pagination arguments of a connection field.
type CursorArgs struct {
	First  *int
	After  *string
	Last   *int
	Before *string
}

// CursorWindow is what the data access layer fetches: up to Limit rows on the
// far side of Boundary, in descending order for forward pages and ascending
// for backward ones.
type CursorWindow struct {
	// Limit is the page size plus one probe row for has-more detection.
	Limit int
	// PageSize is the number of edges actually returned to the client.
	PageSize int
	Boundary *Cursor
	Backward bool
}

// Window resolves the arguments into a fetch window. When both after and
// before are supplied, after wins and the request paginates forward. A lone
// before paginates backward with the default page size.
func (a CursorArgs) Window() (CursorWindow, error) {
	forward := a.First != nil || a.After != nil || (a.Last == nil && a.Before == nil)

	size := DefaultPageSize
	var boundary *string
	if forward {
		if a.First != nil {
			size = *a.First
		}
		boundary = a.After
	} else {
		if a.Last != nil {
			size = *a.Last
		}
		boundary = a.Before
	}

	if size < 0 {
		return CursorWindow{}, ErrInvalidPageSize().WithDetail("size", size)
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	w := CursorWindow{
		Limit:    size + 1,
		PageSize: size,
		Backward: !forward,
	}
	if boundary != nil {
		c, err := DecodeCursor(*boundary)
		if err != nil {
			return CursorWindow{}, err
		}
		w.Boundary = &c
	}
	return w, nil
}
