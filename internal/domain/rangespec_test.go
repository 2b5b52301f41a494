package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange(t *testing.T) {
	const size = 500

	tests := []struct {
		name    string
		header  string
		want    *ByteRange
		wantErr error
	}{
		{name: "no header serves full body", header: "", want: nil},
		{name: "first hundred bytes", header: "bytes=0-99", want: &ByteRange{Start: 0, End: 99}},
		{name: "open end runs to last byte", header: "bytes=100-", want: &ByteRange{Start: 100, End: 499}},
		{name: "open start becomes zero", header: "bytes=-100", want: &ByteRange{Start: 0, End: 100}},
		{name: "end clamped to size", header: "bytes=400-9999", want: &ByteRange{Start: 400, End: 499}},
		{name: "single byte", header: "bytes=499-499", want: &ByteRange{Start: 499, End: 499}},
		{name: "start past size", header: "bytes=600-", wantErr: ErrInvalidRange},
		{name: "start equals size", header: "bytes=500-", wantErr: ErrInvalidRange},
		{name: "start beyond end", header: "bytes=200-100", wantErr: ErrInvalidRange},
		{name: "garbage header is lenient", header: "pages=1-2", want: nil},
		{name: "non numeric is lenient", header: "bytes=abc-def", want: nil},
		{name: "multi range is lenient", header: "bytes=0-1,5-9", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRange(tt.header, size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRangeEmptyRecord(t *testing.T) {
	_, err := ResolveRange("bytes=0-10", 0)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestByteRangeHeaders(t *testing.T) {
	br := ByteRange{Start: 0, End: 99}
	assert.Equal(t, int64(100), br.Len())
	assert.Equal(t, "bytes 0-99/500", br.ContentRange(500))
	assert.Equal(t, "bytes */500", UnsatisfiableRange(500))
}
