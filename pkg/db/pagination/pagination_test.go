package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	token, err := EncodeCursor(Cursor{ID: "42", CreatedAt: "2024-05-01T08:00:00Z"})
	require.NoError(t, err)

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, "42", decoded.ID)
	assert.Equal(t, "2024-05-01T08:00:00Z", decoded.CreatedAt)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, err := DecodeCursor("not-base64!")
	assert.Error(t, err)
}

func TestBuildCursorPageInfo(t *testing.T) {
	type row struct{ ID string }
	encode := func(r *row) string { return r.ID }

	info := BuildCursorPageInfo(nil, 10, encode)
	assert.False(t, info.HasMore)
	assert.Empty(t, info.NextPageToken)

	rows := []*row{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	info = BuildCursorPageInfo(rows, 2, encode)
	assert.True(t, info.HasMore)
	assert.Equal(t, "b", info.NextPageToken)

	info = BuildCursorPageInfo(rows, 3, encode)
	assert.False(t, info.HasMore)
	assert.Empty(t, info.NextPageToken)
}
