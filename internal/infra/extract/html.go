package extract

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors are tried in order to locate the main content area of a
// legal page before falling back to the whole body.
var contentSelectors = []string{
	"main", "[role=\"main\"]", ".main-content", ".content",
	".terms", ".privacy", ".policy", ".legal", "article",
}

// Extractor turns raw HTML into whitespace-normalized plain text plus a
// document title.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(raw []byte, pageURL string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", "", err
	}

	// Chrome and boilerplate never belong in the analyzed text.
	doc.Find("script, style, nav, header, footer, aside").Remove()

	var content *goquery.Selection
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			content = s
			break
		}
	}
	if content == nil {
		content = doc.Find("body").First()
	}

	var text string
	if content.Length() > 0 {
		text = content.Text()
	} else {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		if u, err := url.Parse(pageURL); err == nil {
			title = u.Host
		}
	}

	return text, title, nil
}
