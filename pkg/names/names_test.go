package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name      string
		display   string
		canonical string
		want      string
	}{
		{"canonical wins", "BEH - Room 1000", "BEH 1000", "BEH 1000"},
		{"room pattern collapses", "BEH - Room 1000", "", "BEH 1000"},
		{"dash with digits collapses", "BEH - 1000", "", "BEH 1000"},
		{"dash without digits passes through", "North - Annex", "", "North - Annex"},
		{"plain name passes through", "Student Union", "", "Student Union"},
		{"empty display", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.display, tt.canonical))
		})
	}
}
