package jdtext

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the readable content of a job description page.
type Page struct {
	Title string
	Text  string
}

// noise is removed before text extraction.
const noise = "head, script, style, noscript, template, svg, nav, header, footer, form, iframe"

// blocks are elements that start a new line.
const blocks = "p, div, section, article, main, aside, li, ul, ol, dl, dt, dd, " +
	"h1, h2, h3, h4, h5, h6, tr, table, blockquote, pre"

// ParseHTML extracts the title and the text of an HTML job description.
// Block elements and list items become separate lines; whitespace inside a
// line is collapsed.
func ParseHTML(r io.Reader) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Page{}, fmt.Errorf("parse job description html: %w", err)
	}

	title := CleanText(doc.Find("h1").First().Text())
	if title == "" {
		title = CleanText(doc.Find("title").First().Text())
	}

	doc.Find(noise).Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blocks).Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("\n")
		s.AppendHtml("\n")
	})

	return Page{
		Title: title,
		Text:  joinLines(doc.Find("body").Text()),
	}, nil
}

// FromHTML returns the text of an HTML job description.
func FromHTML(r io.Reader) (string, error) {
	page, err := ParseHTML(r)
	if err != nil {
		return "", err
	}

	return page.Text, nil
}

// LooksLikeHTML reports whether s appears to be an HTML document or fragment.
func LooksLikeHTML(s string) bool {
	head := strings.ToLower(strings.TrimSpace(s))
	if len(head) > 512 {
		head = head[:512]
	}

	for _, marker := range []string{"<!doctype html", "<html", "<body", "<div", "<p>", "<p ", "<ul", "<li>", "<br", "<h1", "<h2"} {
		if strings.Contains(head, marker) {
			return true
		}
	}

	return false
}

// CleanText collapses runs of whitespace (including non-breaking spaces)
// into single spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

func joinLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if line = CleanText(line); line != "" {
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n")
}
