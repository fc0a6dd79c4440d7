package netgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lwmacct/261015-go-pkg-netgen/pkg/netgen"
)

func TestFindMarker(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		found bool
		want  netgen.Marker
	}{
		{
			name:  "no sentinel",
			line:  "  integer :: i\n",
			found: false,
		},
		{
			name:  "indented marker",
			line:  "    @@SPEC_NAMES@@\n",
			found: true,
			want:  netgen.Marker{Keyword: "SPEC_NAMES", Indent: "    ", Text: "@@SPEC_NAMES@@"},
		},
		{
			name:  "marker with prefix and suffix",
			line:  "  integer, parameter :: nspec = @@NSPEC@@\n",
			found: true,
			want:  netgen.Marker{Keyword: "NSPEC", Indent: "  integer, parameter :: nspec = ", Text: "@@NSPEC@@"},
		},
		{
			name:  "non-whitespace indent kept literally",
			line:  "!$ \t@@AION@@",
			found: true,
			want:  netgen.Marker{Keyword: "AION", Indent: "!$ \t", Text: "@@AION@@"},
		},
		{
			name:  "single sentinel yields empty keyword",
			line:  "email@@host\n",
			found: true,
			want:  netgen.Marker{Indent: "email", Text: "@@"},
		},
		{
			name:  "overlapping sentinels",
			line:  "@@@\n",
			found: true,
			want:  netgen.Marker{Text: "@@"},
		},
		{
			name:  "first and last sentinel span",
			line:  "@@A@@B@@\n",
			found: true,
			want:  netgen.Marker{Keyword: "A@@B", Text: "@@A@@B@@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := netgen.FindMarker(tt.line)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"AION", "NSPEC", "SHORT_SPEC_NAMES", "SPEC_NAMES", "ZION"}, netgen.Keywords())
}
