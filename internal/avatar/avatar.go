// Package avatar derives gravatar URLs from email addresses.
package avatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// URL returns the gravatar URL for an email: 200px, PG-rated, with the
// "mystery man" fallback for addresses without a gravatar.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
