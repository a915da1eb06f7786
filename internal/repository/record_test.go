package repository

import (
	"testing"
	"time"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"

	"github.com/stretchr/testify/require"
)

func TestDecodeRecord(t *testing.T) {
	entry, err := decodeRecord([]byte("date: \"2024-11-23\"\ntitle: Today\ncontent: |-\n  a\n  b\nauthor: John Doe\n"))
	require.NoError(t, err)
	require.Equal(t, model.NewEntry(time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC), "Today", "a\nb", "John Doe"), entry)
}

func TestDecodeRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"missing date", "title: x\nauthor: y\n"},
		{"bad date", "date: 2024-13-45\n"},
		{"unknown field", "date: \"2024-11-23\"\nmood: happy\n"},
		{"not yaml", "date: [unclosed\n"},
		{"legacy text", "Date: 2024-11-23\nTitle: a\nContent: b\nAuthor: c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeRecord([]byte(tt.raw))
			require.Error(t, err)
		})
	}
}

func TestEncodeRecord_RoundTrip(t *testing.T) {
	entry := model.NewEntry(time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), "yes", "# not a comment\n- not a list", "no")
	raw, err := encodeRecord(entry)
	require.NoError(t, err)

	decoded, err := decodeRecord(raw)
	require.NoError(t, err)
	require.Equal(t, entry, decoded)
}

func TestDecodeLegacy(t *testing.T) {
	entry, err := decodeLegacy([]byte("Date: 2024-11-23\r\nTitle: \r\nContent: a: b\r\nAuthor: John Doe\r\n"))
	require.NoError(t, err)
	require.Equal(t, "", entry.Title)
	require.Equal(t, "a: b", entry.Content)
	require.Equal(t, "John Doe", entry.Author)

	for _, raw := range []string{
		"",
		"Date: 2024-11-23\nTitle: t\n",
		"Title: t\nDate: 2024-11-23\nContent: c\nAuthor: a\n",
		"Date: 23-11-2024\nTitle: t\nContent: c\nAuthor: a\n",
		"Date: 2024-11-23\nTitle: t\nContent: c\nAuthor: a\nextra\n",
	} {
		_, err := decodeLegacy([]byte(raw))
		require.Error(t, err, raw)
	}
}
