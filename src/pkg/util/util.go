package util

import (
    "strings"
)

func IsEmptyString(s string) bool {
    return len(strings.TrimSpace(s)) == 0
}

// RedactQuery strips the query string from a URI so API keys never reach the logs
func RedactQuery(uri string) string {
    if i := strings.IndexByte(uri, '?'); i >= 0 {
        return uri[:i]
    }
    return uri
}
