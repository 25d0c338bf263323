package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr("   "))
	require.NotNil(t, StringPtr(" x "))
	assert.Equal(t, "x", *StringPtr(" x "))
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "x", StringValue(StringPtr("x")))
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("y"))
	assert.True(t, ParseBool("on"))
	assert.True(t, ParseBool("True"))
	assert.False(t, ParseBool(""))
	assert.False(t, ParseBool("n"))
}

func TestRequestIDContext(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	id := GenerateRequestID()
	got, ok := GetRequestIDFromContext(SetRequestID(context.Background(), id))
	require.True(t, ok)
	assert.Equal(t, id, got)
}
