package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "bryceyoung", NormalizeName("  Bryce Young \n"))
	require.Equal(t, "sanfrancisco49ers", NormalizeName("San Francisco 49Ers"))
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Latino Hispanic", Title("latino hispanic"))
	require.Equal(t, "Happy", Title("happy"))
	require.Equal(t, "", Title(""))
}
