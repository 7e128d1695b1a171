package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SNAPLEDGER_TEST_DIR", "/var/data")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty path", input: "", want: ""},
		{name: "bare tilde", input: "~", want: home},
		{name: "tilde prefix", input: "~/ledger/snap.db", want: filepath.Join(home, "ledger/snap.db")},
		{name: "env var", input: "$SNAPLEDGER_TEST_DIR/snap.db", want: "/var/data/snap.db"},
		{name: "plain path untouched", input: "/tmp/snap.db", want: "/tmp/snap.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
