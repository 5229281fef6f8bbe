package kernel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	c := Cursor{At: at, ID: "7f9c1d2e"}

	decoded, err := DecodeCursor(c.Encode())
	require.NoError(t, err)
	assert.True(t, decoded.At.Equal(at))
	assert.Equal(t, "7f9c1d2e", decoded.ID)
}

func TestDecodeCursorMalformed(t *testing.T) {
	cases := []string{
		"not-base64!!",
		"aGVsbG8=",         // no separator
		"MjAyNnwzfGFiYw==", // bad timestamp
		"",
	}
	for _, s := range cases {
		_, err := DecodeCursor(s)
		assert.Error(t, err, s)
	}
}

func TestWindowForward(t *testing.T) {
	first := 5
	after := Cursor{At: time.Now(), ID: "x"}.Encode()

	w, err := CursorArgs{First: &first, After: &after}.Window()
	require.NoError(t, err)
	assert.Equal(t, 6, w.Limit)
	assert.Equal(t, 5, w.PageSize)
	assert.False(t, w.Backward)
	require.NotNil(t, w.Boundary)
	assert.Equal(t, "x", w.Boundary.ID)
}

func TestWindowBackward(t *testing.T) {
	last := 3
	before := Cursor{At: time.Now(), ID: "y"}.Encode()

	w, err := CursorArgs{Last: &last, Before: &before}.Window()
	require.NoError(t, err)
	assert.Equal(t, 4, w.Limit)
	assert.True(t, w.Backward)
	require.NotNil(t, w.Boundary)
	assert.Equal(t, "y", w.Boundary.ID)
}

func TestWindowLoneBeforePaginatesBackward(t *testing.T) {
	before := Cursor{At: time.Now(), ID: "y"}.Encode()

	w, err := CursorArgs{Before: &before}.Window()
	require.NoError(t, err)
	assert.True(t, w.Backward)
	assert.Equal(t, DefaultPageSize, w.PageSize)
	require.NotNil(t, w.Boundary)
	assert.Equal(t, "y", w.Boundary.ID)
}

func TestWindowAfterWinsOverBefore(t *testing.T) {
	first := 2
	after := Cursor{At: time.Now(), ID: "a"}.Encode()
	before := Cursor{At: time.Now(), ID: "b"}.Encode()

	w, err := CursorArgs{First: &first, After: &after, Before: &before}.Window()
	require.NoError(t, err)
	assert.False(t, w.Backward)
	assert.Equal(t, "a", w.Boundary.ID)
}

func TestWindowDefaultsAndBounds(t *testing.T) {
	w, err := CursorArgs{}.Window()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, w.PageSize)
	assert.False(t, w.Backward)
	assert.Nil(t, w.Boundary)

	zero := 0
	w, err = CursorArgs{First: &zero}.Window()
	require.NoError(t, err)
	assert.Equal(t, 0, w.PageSize)
	assert.Equal(t, 1, w.Limit) // still probes one row for hasNextPage

	negative := -1
	_, err = CursorArgs{First: &negative}.Window()
	assert.Error(t, err)

	huge := 5000
	w, err = CursorArgs{First: &huge}.Window()
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, w.PageSize)
}

func TestWindowMalformedAfter(t *testing.T) {
	bad := "zzz"
	_, err := CursorArgs{After: &bad}.Window()
	assert.Error(t, err)
}
