// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var errHTTPAddressMissing = errors.New("handler: http address is not configured")
