// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package debug exposes the build-time debug flag consulted by the module
// logger. Build with the debug tag to keep logging enabled under go test.
package debug
