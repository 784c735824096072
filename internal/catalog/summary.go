package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainSummary strips the HTML-fragment markup the catalog API embeds in
// show summaries (<p>, <b>, <i>, …) and returns the bare text. A summary
// that fails to parse is returned unchanged rather than dropped.
func PlainSummary(summary string) string {
	if summary == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary))
	if err != nil {
		return strings.TrimSpace(summary)
	}
	return strings.TrimSpace(doc.Text())
}
