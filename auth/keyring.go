// Package auth persists share passcodes in the system keyring, so a
// passcode entered once is filled in automatically on later visits.
package auth

import (
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"
)

const service = "fullbr115"

// SetPasscode stores the passcode for a share link.
func SetPasscode(link, passcode string) error {
	return keyring.Set(service, shareCode(link), passcode)
}

// Passcode retrieves the stored passcode for a share link. A missing
// entry reports keyring.ErrNotFound.
func Passcode(link string) (string, error) {
	return keyring.Get(service, shareCode(link))
}

// DeletePasscode removes the stored passcode for a share link.
func DeletePasscode(link string) error {
	return keyring.Delete(service, shareCode(link))
}

// shareCode reduces a share link to its share code, the last path
// segment, so equivalent links with different hosts or query strings
// share one entry.
func shareCode(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	code := segments[len(segments)-1]
	if code == "" {
		return link
	}
	return "share-" + code
}
