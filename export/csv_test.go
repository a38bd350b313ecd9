package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"wagoextract/core"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	records := []core.Record{
		{
			ID:          2,
			Name:        `Blade, "Sharp"`,
			Class:       "WEAPON",
			Description: "line one\nline two",
		},
		{
			ID:    1,
			Name:  "Potion",
			Class: "CONSUMABLE",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	parsed, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	require.Equal(t, core.Header(), parsed[0])

	// Rows come out sorted by item ID, with delimiter, quote, and newline
	// content reproduced exactly.
	require.Equal(t, "1", parsed[1][0])
	require.Equal(t, "Potion", parsed[1][1])
	require.Equal(t, "2", parsed[2][0])
	require.Equal(t, `Blade, "Sharp"`, parsed[2][1])
	require.Equal(t, "line one\nline two", parsed[2][9])
}

func TestWriteCSVDeterministic(t *testing.T) {
	records := []core.Record{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	var first, second bytes.Buffer
	require.NoError(t, WriteCSV(&first, records))
	require.NoError(t, WriteCSV(&second, records))
	require.Equal(t, first.String(), second.String())
}
