package templexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/261015-go-pkg-netgen/pkg/templexp"
)

func TestExpand(t *testing.T) {
	env := map[string]string{
		"NET_DIR": "networks/aprox13",
		"EMPTY":   "",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]

		return v, ok
	}

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
		errMsg   string
	}{
		{name: "plain text untouched", template: "network.template", want: "network.template"},
		{name: "basic expansion", template: "${NET_DIR}/network.template", want: "networks/aprox13/network.template"},
		{name: "missing expands to empty", template: "x=${MISSING}", want: "x="},
		{name: "colon fallback treats empty as unset", template: "${EMPTY:-general_null}", want: "general_null"},
		{name: "fallback without colon keeps empty", template: "x=${EMPTY-general_null}", want: "x="},
		{name: "nested fallback", template: "${MISSING:-${NET_DIR}}", want: "networks/aprox13"},
		{name: "literal dollar", template: "$$${NET_DIR}", want: "$networks/aprox13"},
		{name: "bare dollar kept", template: "$NET_DIR", want: "$NET_DIR"},
		{name: "unterminated kept", template: "${NET_DIR", want: "${NET_DIR"},
		{name: "unknown operator kept", template: "${NET_DIR:+alt}", want: "${NET_DIR:+alt}"},
		{name: "invalid name kept", template: "${1ABC}", want: "${1ABC}"},
		{name: "required missing", template: "${MISSING:?species file required}", wantErr: true, errMsg: "species file required"},
		{name: "required empty without colon passes", template: "[${EMPTY?x}]", want: "[]"},
		{name: "required default message", template: "${MISSING?}", wantErr: true, errMsg: "parameter null or not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templexp.Expand(tt.template, lookup)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandTemplate_Environment(t *testing.T) {
	t.Setenv("NETGEN_TEST_DIR", "/opt/microphysics")

	got, err := templexp.ExpandTemplate(`template: "${NETGEN_TEST_DIR}/networks/${NETGEN_TEST_NET:-general_null}"`)
	require.NoError(t, err)
	assert.Equal(t, `template: "/opt/microphysics/networks/general_null"`, got)
}
