package inference

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// bootImageWindow is how much of a boot image header is scanned.
const bootImageWindow = 16 * 1024

// datePattern pairs a matcher with the parser for the text it matches.
type datePattern struct {
	re    *regexp.Regexp
	parse func(string) (time.Time, error)
}

// datePatterns is evaluated in order; the first match that parses wins.
var datePatterns = []datePattern{
	{
		// Nov 18 2020
		re:    regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2}\s+\d{4}\b`),
		parse: parseMonthDayYear,
	},
	{
		// 2024.1.7, 2024.01.07
		re:    regexp.MustCompile(`\b\d{4}\.\d{1,2}\.\d{1,2}\b`),
		parse: layoutParser("2006.1.2"),
	},
	{
		// 2024-01-07
		re:    regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		parse: layoutParser("2006-01-02"),
	},
}

// bootImageDate scans the head of a boot image for a build date.
func (i *Inferrer) bootImageDate(ctx context.Context, path string) (string, bool) {
	f, err := i.fs.Open(ctx, path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf := make([]byte, bootImageWindow)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false
	}

	return scanDate(buf[:n])
}

// scanDate looks for the first parseable date in a raw header.
// The bytes are decoded as ISO-8859-1, which maps every byte to a rune.
func scanDate(raw []byte) (string, bool) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	text := string(decoded)

	for _, p := range datePatterns {
		match := p.re.FindString(text)
		if match == "" {
			continue
		}
		t, err := p.parse(match)
		if err != nil {
			continue
		}
		return t.Format(VersionLayout), true
	}
	return "", false
}

func parseMonthDayYear(s string) (time.Time, error) {
	return time.Parse("Jan 2 2006", strings.Join(strings.Fields(s), " "))
}

func layoutParser(layout string) func(string) (time.Time, error) {
	return func(s string) (time.Time, error) {
		return time.Parse(layout, s)
	}
}
