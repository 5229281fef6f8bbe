package gid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	id := "3f8a2c61-9b7e-4d5f-8a12-0c4e9d6b1f37"
	assert.Equal(t, "applicant-"+id, Encode(KindApplicant, id))
	assert.Equal(t, id, Decode(KindApplicant, Encode(KindApplicant, id)))
}

func TestDecodeBareID(t *testing.T) {
	assert.Equal(t, "abc123", Decode(KindJob, "abc123"))
}

func TestDecodeLegacyAdminJobPrefix(t *testing.T) {
	assert.Equal(t, "abc123", Decode(KindJob, "admin-job-abc123"))
}

func TestDecodeDoesNotStripForeignPrefix(t *testing.T) {
	assert.Equal(t, "job-abc123", Decode(KindApplicant, "job-abc123"))
}
