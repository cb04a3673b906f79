// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strconv"

	"github.com/kkrgzz/encrypt-x/models"
)

// ResolveForVersion returns the transform for an inline marker version.
// There is no fallback: an unknown version yields a [*ResolutionError].
// params only affect [VersionTunable].
func ResolveForVersion(version int, params models.CipherParams) (Transform, error) {
	switch Version(version) {
	case VersionObsolete:
		return newObsoleteTransform(), nil
	case VersionFixedSalt:
		return newFixedSaltTransform(), nil
	case VersionTunable:
		return newTunableTransform(params), nil
	}
	return nil, &ResolutionError{Source: "marker", Version: strconv.Itoa(version)}
}

// ResolveForFileVersion returns the transform for a whole-file version tag
// ("1.0" or "2.0").
func ResolveForFileVersion(tag string, params models.CipherParams) (Transform, error) {
	v, ok := fileVersion(tag)
	if !ok {
		return nil, &ResolutionError{Source: "file", Version: tag}
	}
	return ResolveForVersion(int(v), params)
}

// BuildCurrent returns the transform used for every new encryption.
func BuildCurrent(params models.CipherParams) Transform {
	return newTunableTransform(params)
}

type registry struct {
	params models.CipherParams
}

// NewRegistry binds params to the package-level resolution functions.
func NewRegistry(params models.CipherParams) Registry {
	return &registry{params: params}
}

func (r *registry) ResolveForVersion(version int) (Transform, error) {
	return ResolveForVersion(version, r.params)
}

func (r *registry) ResolveForFileVersion(tag string) (Transform, error) {
	return ResolveForFileVersion(tag, r.params)
}

func (r *registry) BuildCurrent() Transform {
	return BuildCurrent(r.params)
}
