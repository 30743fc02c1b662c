// Quakescope - Userquake Timeline Playback
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/quakescope

package assets

import (
	"net/url"
	"strings"
)

// Locator builds image locators from record identities.
type Locator struct {
	CDNBase string
	Suffix  string
}

// For returns the locator of identity, or "" when identity is empty.
func (l Locator) For(identity string) string {
	if identity == "" {
		return ""
	}
	q := url.Values{}
	q.Set("id", identity)
	q.Set("suffix", l.Suffix)

	sep := "?"
	if strings.Contains(l.CDNBase, "?") {
		sep = "&"
	}
	return l.CDNBase + sep + q.Encode()
}
