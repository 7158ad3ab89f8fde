package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestNewComposesOptionsLastWriterWins(t *testing.T) {
	c, err := New(
		WithSDDUniqueTableSize(100),
		WithCacheSizes(1, 2, 3),
		WithHomSizes(4, 5),
		WithArena(1024, 7),
		WithFlatSetUnify(true),
		WithVerbose(true),
	)
	require.NoError(t, err)
	require.Equal(t, 100, c.SDDUniqueTableSize)
	require.Equal(t, 1, c.SumCacheSize)
	require.Equal(t, 2, c.IntersectionCacheSize)
	require.Equal(t, 3, c.DifferenceCacheSize)
	require.Equal(t, 4, c.HomUniqueTableSize)
	require.Equal(t, 5, c.HomCacheSize)
	require.Equal(t, 7, c.ArenaBlocks)
	require.True(t, c.FlatSetUnify)
	require.True(t, c.Verbose)
}

func TestValidateRejectsNonPositiveSizes(t *testing.T) {
	_, err := New(WithSDDUniqueTableSize(0))
	require.Error(t, err)

	_, err = New(WithCacheSizes(0, 1, 1))
	require.Error(t, err)

	_, err = New(WithArena(1024, 0))
	require.Error(t, err)
}

func TestRegisterFlagsBindsDefaultsAndOverrides(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := RegisterFlags(fs)
	require.Equal(t, Default().SDDUniqueTableSize, c.SDDUniqueTableSize)

	require.NoError(t, fs.Parse([]string{"--sdd-unique-table-size=42", "--flat-set-unify", "--sdd-arena-size=32MB"}))
	require.Equal(t, 42, c.SDDUniqueTableSize)
	require.True(t, c.FlatSetUnify)
	require.Equal(t, uint64(32*1024*1024), uint64(c.ArenaSize))
}
