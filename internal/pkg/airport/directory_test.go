package airport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SeedList(t *testing.T) {
	dir, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 20, dir.Len())

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, dir, again)

	lax, ok := dir.Lookup("lax")
	require.True(t, ok)
	assert.Equal(t, Airport{
		Code:     "LAX",
		Name:     "Los Angeles International",
		City:     "Los Angeles, CA",
		Timezone: "America/Los_Angeles",
	}, lax)

	_, ok = dir.Lookup("XXX")
	assert.False(t, ok)
}

func TestDirectory_Search(t *testing.T) {
	dir, err := Default()
	require.NoError(t, err)

	searchRequest := func(query string, limit int, wantCodes []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := dir.Search(query, limit)
			gotCodes := make([]string, len(got))
			for i, a := range got {
				gotCodes[i] = a.Code
			}

			if diff := cmp.Diff(wantCodes, gotCodes); diff != "" {
				t.Fatalf("Search(%q) mismatch (-want +got):\n%s", query, diff)
			}
		}
	}

	t.Run("empty_query_first_eight", searchRequest("", 0,
		[]string{"LAX", "SFO", "JFK", "LGA", "ORD", "MIA", "DEN", "SEA"}))
	t.Run("by_city", searchRequest("new york", 0, []string{"JFK", "LGA"}))
	t.Run("by_code", searchRequest("dxb", 0, []string{"DXB"}))
	t.Run("by_name_limited", searchRequest("london", 1, []string{"LHR"}))
	t.Run("no_match", searchRequest("atlantis", 0, []string{}))
}

func TestLoadDirectory_Rejects(t *testing.T) {
	loadRequest := func(csv string, wantErr string) func(t *testing.T) {
		return func(t *testing.T) {
			_, err := LoadDirectory(strings.NewReader(csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), wantErr)
		}
	}

	header := "code,name,city,timezone\n"

	t.Run("bad_code", loadRequest(header+"LA,Los Angeles,LA,America/Los_Angeles\n", "not a 3-letter"))
	t.Run("duplicate", loadRequest(header+
		"LAX,A,B,America/Los_Angeles\nlax,C,D,America/Los_Angeles\n", "duplicate code LAX"))
	t.Run("bad_timezone", loadRequest(header+"LAX,A,B,Pacific/Nowhere\n", "timezone"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("code,name,city,timezone\nBOM,Chhatrapati Shivaji,\"Mumbai, India\",Asia/Kolkata\n"), 0o600))

	dir, err := LoadFile(path)
	require.NoError(t, err)

	bom, ok := dir.Lookup("BOM")
	require.True(t, ok)
	assert.Equal(t, "Asia/Kolkata", bom.Timezone)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
