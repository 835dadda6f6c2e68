package content

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pelletier/go-toml/v2"
	"github.com/russross/blackfriday/v2"
)

const markdownExtensions = blackfriday.CommonExtensions | blackfriday.Footnotes | blackfriday.AutoHeadingIDs

// renderMarkdown splits off the front matter and renders the rest into HTML.
func renderMarkdown(b []byte) (FrontMatter, template.HTML, error) {
	var front FrontMatter
	fm, r := extractFrontMatter(b)
	if len(fm) > 0 {
		err := toml.Unmarshal(fm, &front)
		if err != nil {
			return front, "", fmt.Errorf("renderMarkdown: %w", err)
		}
	}
	md := template.HTML(blackfriday.Run(r, blackfriday.WithExtensions(markdownExtensions)))
	return front, md, nil
}

// tableOfContents lists the h2 and h3 headings of rendered HTML that carry an id.
func tableOfContents(html template.HTML) []Heading {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	if err != nil {
		return nil
	}
	var toc []Heading
	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		id, ok := s.Attr("id")
		if !ok || id == "" {
			return
		}
		level := 2
		if goquery.NodeName(s) == "h3" {
			level = 3
		}
		toc = append(toc, Heading{ID: id, Title: strings.TrimSpace(s.Text()), Level: level})
	})
	return toc
}
