package envtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetenv(t *testing.T) {
	t.Parallel()

	env := MustPairs(
		"FOO", "bar",
		"BAZ", "",
	)

	tests := []struct {
		desc   string
		key    string
		want   string
		wantOK bool
	}{
		{desc: "match", key: "FOO", want: "bar", wantOK: true},
		{desc: "empty match", key: "BAZ", wantOK: true},
		{desc: "no match", key: "QUX"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, env.Getenv(tt.key))

			got, ok := env.LookupEnv(tt.key)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Empty.Getenv("QUX"))
	_, ok := Empty.LookupEnv("QUX")
	assert.False(t, ok)
}

func TestPairsOddArguments(t *testing.T) {
	t.Parallel()

	_, err := Pairs("foo", "bar", "baz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not even")

	assert.Panics(t, func() {
		MustPairs("foo", "bar", "baz")
	})
}
