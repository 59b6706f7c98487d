package textutils

import (
	"regexp"
	"sync"
)

var wholeWordCache sync.Map // keyword -> *regexp.Regexp

// WholeWordPattern returns a case-insensitive regexp matching keyword only on
// word boundaries. Compiled patterns are memoized; they are immutable and safe
// to share between goroutines.
func WholeWordPattern(keyword string) *regexp.Regexp {
	if re, ok := wholeWordCache.Load(keyword); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	actual, _ := wholeWordCache.LoadOrStore(keyword, re)
	return actual.(*regexp.Regexp)
}
