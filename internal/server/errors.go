// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoListenAddress means the daemon was started without a router or an
// address to serve it on.
var errNoListenAddress = errors.New("server: nothing to listen on")
