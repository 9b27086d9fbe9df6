package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avesh-singh/neet-pg-checker/constants"
)

// textPatterns are tried in order against each line; the first match wins.
// The first pattern anchors on the reporting-status tail and is the
// high-precision one; the looser second pattern trades precision for
// recall on pages where the status column did not render.
var textPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s+(AI|IP|DU)\s+([^M]+)(M\.[DS]\..+?)(?:Reported|Not\s+Reported|Seat\s+Surrendered)`),
	regexp.MustCompile(`^(\d+)\s+(AI|IP|DU)\s+(.+?)\s+(M\.[DS]\..+)$`),
}

// TextParser is the last-resort parser for pages where table detection
// found nothing. Recall is known to be lower than the table parsers'.
type TextParser struct {
	Year  int
	Round int
}

// ParseText applies the fallback patterns line by line.
func (p TextParser) ParseText(text string) []Record {
	var records []Record
	for _, line := range strings.Split(text, "\n") {
		rec, ok := p.parseLine(line)
		if ok {
			records = append(records, rec)
		}
	}
	return records
}

func (p TextParser) parseLine(line string) (Record, bool) {
	for _, pattern := range textPatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rank, err := strconv.Atoi(m[1])
		if err != nil || rank <= 0 {
			return Record{}, false
		}
		return Record{
			Year:        p.Year,
			Round:       p.Round,
			Rank:        rank,
			Quota:       constants.NormalizeQuota(m[2]),
			CollegeName: strings.TrimSpace(m[3]),
			Course:      strings.TrimSpace(m[4]),
			Category:    string(constants.CategoryGeneral),
		}, true
	}
	return Record{}, false
}
