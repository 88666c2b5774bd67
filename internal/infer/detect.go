// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package infer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// dateTimeLayouts is the lexical pattern table for timestamp detection.
// Built once per process on first use; read-only afterwards.
var dateTimeLayouts = sync.OnceValue(func() []string {
	return []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
})

// looksLikeDateTime reports whether s matches a recognized timestamp layout.
func looksLikeDateTime(s string) bool {
	if len(s) < 10 || len(s) > 35 {
		return false
	}
	for _, layout := range dateTimeLayouts() {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// looksLikeUUID reports whether s is a canonical hyphenated UUID.
// uuid.Validate also accepts URN and braced forms, which should stay strings.
func looksLikeUUID(s string) bool {
	return len(s) == 36 && uuid.Validate(s) == nil
}
