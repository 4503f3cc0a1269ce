package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicyKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    PolicyKind
		wantErr bool
	}{
		{raw: "round-robin", want: PolicyRoundRobin},
		{raw: " RR ", want: PolicyRoundRobin},
		{raw: "least-loaded", want: PolicyLeastLoaded},
		{raw: "ll", want: PolicyLeastLoaded},
		{raw: "random", want: PolicyRandom},
		{raw: "p2c", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			t.Parallel()
			got, err := ParsePolicyKind(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestPolicyDisplayNames(t *testing.T) {
	assert.Equal(t, "Round Robin", PolicyRoundRobin.DisplayName())
	assert.Equal(t, "Least Loaded Core", PolicyLeastLoaded.DisplayName())
	assert.Equal(t, "Random Assignment", PolicyRandom.DisplayName())
	assert.Equal(t, "custom", PolicyKind("custom").DisplayName())
	assert.False(t, PolicyKind("custom").Valid())
}

func TestParseLeastLoadedMode(t *testing.T) {
	mode, err := ParseLeastLoadedMode("")
	require.NoError(t, err)
	assert.Equal(t, LeastLoadedFixed, mode)

	mode, err = ParseLeastLoadedMode("Adaptive")
	require.NoError(t, err)
	assert.Equal(t, LeastLoadedAdaptive, mode)

	_, err = ParseLeastLoadedMode("greedy")
	assert.ErrorIs(t, err, ErrUnknownLeastLoadedMode)
}
