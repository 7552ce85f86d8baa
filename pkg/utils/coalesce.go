// Copyright Berytech and each contributor.
// SPDX-License-Identifier: MIT

package utils

// CoalesceString returns the first non-empty string from the given arguments.
func CoalesceString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// PositiveOrDefault returns n when it is positive, otherwise def.
func PositiveOrDefault(n, def int) int {
	if n > 0 {
		return n
	}
	return def
}
