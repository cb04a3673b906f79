// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command encryptx encrypts and decrypts fragments of text documents.
//
// Build metadata is stamped with
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%F)"
package main

import (
	"os"

	"github.com/kkrgzz/encrypt-x/internal/client"
	"github.com/kkrgzz/encrypt-x/models"
)

var version, date, commit string

func main() {
	if err := client.NewApp(models.NewAppBuildInfo(version, date, commit)).Run(); err != nil {
		os.Exit(1)
	}
}
