// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI escape sequences for terminal text styling.
// Output is automatically disabled when stdout is not a terminal or when
// the NO_COLOR environment variable is set.
package color
