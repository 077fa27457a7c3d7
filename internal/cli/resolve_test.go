package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/hangar/internal/logbook"
	"github.com/five82/hangar/internal/state"
)

func TestResolve(t *testing.T) {
	items := []logbook.StockItem{
		{ID: "a1b2c3d4-0000", Name: "Main blade", Reference: "H15H001"},
		{ID: "a1b2ffff-1111", Name: "Tail blade", Reference: "H15H002"},
		{ID: "9999eeee-2222", Name: "Main blade", Reference: "H15H003"},
	}
	id := func(i logbook.StockItem) string { return i.ID }
	ref := func(i logbook.StockItem) string { return i.Reference }
	name := func(i logbook.StockItem) string { return i.Name }

	tests := []struct {
		name    string
		ref     string
		wantID  string
		wantErr error
	}{
		{"exact id", "9999eeee-2222", "9999eeee-2222", nil},
		{"natural key ignores case", "h15h002", "a1b2ffff-1111", nil},
		{"unique id prefix", "a1b2c", "a1b2c3d4-0000", nil},
		{"short prefix rejected", "999", "", state.ErrNotFound},
		{"ambiguous prefix", "a1b2", "", errAmbiguous},
		{"ambiguous name", "main blade", "", errAmbiguous},
		{"unknown", "nope", "", state.ErrNotFound},
		{"empty", "  ", "", state.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolve("stock item", items, tt.ref, id, ref, name)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "a1b2c3d4", shortID("a1b2c3d4-0000"))
	assert.Equal(t, "abc", shortID("abc"))
}
