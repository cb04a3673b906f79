// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the encryptx command line application.
//
// It resolves selections inside vault documents, asks for passwords through
// the terminal UI (or plain stdin when no terminal is attached) and runs the
// cryptographic operations through an [adapter.Backend].
package client
