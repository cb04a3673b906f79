// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CacheLookupRequest asks for the remembered password of a document.
type CacheLookupRequest struct {
	Path string `json:"path"`
}

// CacheClearResponse reports how many remembered passwords were dropped.
type CacheClearResponse struct {
	Cleared int `json:"cleared"`
}

// ErrorResponse is the JSON body written for failed daemon requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse describes the running daemon.
type VersionResponse struct {
	Version       string `json:"version"`
	MarkerVersion int    `json:"marker_version"`
	FileVersion   string `json:"file_version"`
}
