// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveForVersion_AllKnownVersions(t *testing.T) {
	for _, v := range Versions() {
		tr, err := ResolveForVersion(int(v), fastParams)
		require.NoError(t, err, v.String())
		assert.Equal(t, v, tr.Version())
	}
}

func TestResolveForVersion_Unknown(t *testing.T) {
	for _, v := range []int{-1, 3, 42} {
		tr, err := ResolveForVersion(v, fastParams)
		assert.Nil(t, tr)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedVersion))
		assert.True(t, IsResolutionError(err))

		var re *ResolutionError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "marker", re.Source)
	}
}

func TestResolveForFileVersion(t *testing.T) {
	tests := []struct {
		tag     string
		want    Version
		wantErr bool
	}{
		{tag: "1.0", want: VersionFixedSalt},
		{tag: "2.0", want: VersionTunable},
		{tag: "0.0", wantErr: true},
		{tag: "3.0", wantErr: true},
		{tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			tr, err := ResolveForFileVersion(tt.tag, fastParams)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedVersion)
				var re *ResolutionError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, "file", re.Source)
				assert.Equal(t, tt.tag, re.Version)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Version())
		})
	}
}

func TestBuildCurrent_IsNeverLegacy(t *testing.T) {
	tr := BuildCurrent(fastParams)
	assert.Equal(t, VersionCurrent, tr.Version())
	assert.False(t, tr.Version().Legacy())
	assert.True(t, VersionObsolete.Legacy())
	assert.True(t, VersionFixedSalt.Legacy())
}

func TestRegistry_BindsParams(t *testing.T) {
	r := NewRegistry(fastParams)

	ct, err := r.BuildCurrent().EncryptToBase64("bound", "pw")
	require.NoError(t, err)

	tr, err := r.ResolveForVersion(int(VersionTunable))
	require.NoError(t, err)
	got, ok := tr.DecryptFromBase64(ct, "pw")
	require.True(t, ok)
	assert.Equal(t, "bound", got)

	tr, err = r.ResolveForFileVersion(CurrentFileVersion)
	require.NoError(t, err)
	got, ok = tr.DecryptFromBase64(ct, "pw")
	require.True(t, ok)
	assert.Equal(t, "bound", got)
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "obsolete", VersionObsolete.String())
	assert.Equal(t, "fixed-salt", VersionFixedSalt.String())
	assert.Equal(t, "tunable", VersionTunable.String())
	assert.Equal(t, "unknown(7)", Version(7).String())
}
