package utils

import (
	"fmt"
	"net/url"
)

// FallbackAvatarURL builds a deterministic avatar image URL for users who
// registered without a profile photo.
func FallbackAvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&size=200", url.QueryEscape(name))
}
