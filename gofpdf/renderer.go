// Package gofpdf renders cleaned article HTML to a paginated A4 PDF
// document. It walks the article tree and lays out headings, paragraphs,
// lists, code blocks, and data-URI images with a fixed style sheet; it does
// not attempt visual fidelity to the source site.
package gofpdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/paperpress"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/net/html"
)

// Ensure Renderer implements paperpress.Renderer at compile time.
var _ paperpress.Renderer = (*Renderer)(nil)

// Page geometry and type scale, A4 in millimeters.
const (
	pageWidth  = 210.0
	margin     = 20.0
	bodyWidth  = pageWidth - 2*margin
	bodySize   = 12.0
	titleSize  = 24.0
	lineHeight = 5.5
)

// headingSizes maps heading tags to font sizes.
var headingSizes = map[string]float64{
	"h1": 20, "h2": 16, "h3": 14, "h4": 12.5, "h5": 12, "h6": 12,
}

// Renderer produces PDF bytes from cleaned article markup. The zero value
// is ready to use.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the markup into a paginated PDF, prepending a styled
// title block when title is non-empty. It never mutates the markup; images
// must already be self-contained data URIs, anything else is skipped.
func (r *Renderer) Render(markup, title string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, paperpress.Errorf(paperpress.EINTERNAL, "failed to parse markup: %v", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	job := &renderJob{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}

	if title != "" {
		job.titleBlock(title)
	}

	job.bodyFont()
	for _, n := range doc.Find("body").Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			job.walk(c)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, paperpress.Errorf(paperpress.EINTERNAL, "pdf generation failed: %v", err)
	}
	return buf.Bytes(), nil
}

// renderJob holds the mutable layout state for a single Render call.
type renderJob struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	imgCount int
}

func (j *renderJob) bodyFont() {
	j.pdf.SetFont("Helvetica", "", bodySize)
	j.pdf.SetTextColor(44, 62, 80)
}

// titleBlock draws the synthesized article title with a separator rule,
// matching the service's fixed style sheet.
func (j *renderJob) titleBlock(title string) {
	j.pdf.SetFont("Helvetica", "B", titleSize)
	j.pdf.SetTextColor(44, 62, 80)
	j.pdf.MultiCell(bodyWidth, 10, j.tr(title), "", "C", false)

	j.pdf.SetDrawColor(52, 152, 219)
	j.pdf.SetLineWidth(1)
	y := j.pdf.GetY() + 3
	j.pdf.Line(margin, y, pageWidth-margin, y)
	j.pdf.Ln(12)
}

func (j *renderJob) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// Bare text directly under the body.
		if text := strings.TrimSpace(n.Data); text != "" {
			j.pdf.MultiCell(bodyWidth, lineHeight, j.tr(text), "", "L", false)
			j.pdf.Ln(2)
		}
	case html.ElementNode:
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			j.heading(n)
		case "p", "blockquote":
			j.paragraph(n)
		case "pre":
			j.codeBlock(n)
		case "ul", "ol":
			j.list(n)
		case "img":
			j.image(n)
		case "table":
			// Tables are flattened to their text content.
			j.paragraph(n)
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				j.walk(c)
			}
		}
	}
}

func (j *renderJob) heading(n *html.Node) {
	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return
	}
	j.pdf.SetFont("Helvetica", "B", headingSizes[n.Data])
	j.pdf.SetTextColor(52, 73, 94)
	j.pdf.MultiCell(bodyWidth, 8, j.tr(text), "", "L", false)
	j.pdf.Ln(2)
	j.bodyFont()
}

func (j *renderJob) paragraph(n *html.Node) {
	if text := strings.TrimSpace(textContent(n)); text != "" {
		j.pdf.MultiCell(bodyWidth, lineHeight, j.tr(text), "", "L", false)
		j.pdf.Ln(2)
	}
	// Images nested inside the paragraph keep their position after its text.
	forEachElement(n, "img", j.image)
}

func (j *renderJob) codeBlock(n *html.Node) {
	text := strings.TrimRight(rawTextContent(n), "\n")
	if text == "" {
		return
	}
	j.pdf.SetFont("Courier", "", 10)
	j.pdf.MultiCell(bodyWidth, 4.5, j.tr(text), "", "L", false)
	j.pdf.Ln(2)
	j.bodyFont()
}

func (j *renderJob) list(n *html.Node) {
	index := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		index++
		text := strings.TrimSpace(textContent(c))
		if text == "" {
			continue
		}
		marker := "- "
		if n.Data == "ol" {
			marker = fmt.Sprintf("%d. ", index)
		}
		j.pdf.MultiCell(bodyWidth, lineHeight, j.tr(marker+text), "", "L", false)
	}
	j.pdf.Ln(2)
}

// image embeds a data-URI image, scaled to fit the content width and
// centered. Images gofpdf cannot decode are skipped; a broken image never
// fails the whole render.
func (j *renderJob) image(n *html.Node) {
	data, imageType, ok := decodeDataURI(attrValue(n, "src"))
	if !ok {
		return
	}

	j.imgCount++
	name := fmt.Sprintf("inline-%d", j.imgCount)
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}

	info := j.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if j.pdf.Err() {
		j.pdf.ClearError()
		return
	}

	w := info.Width()
	if w <= 0 {
		return
	}
	if w > bodyWidth {
		w = bodyWidth
	}

	j.pdf.ImageOptions(name, (pageWidth-w)/2, j.pdf.GetY(), w, 0, true, opts, 0, "")
	if j.pdf.Err() {
		j.pdf.ClearError()
		return
	}
	j.pdf.Ln(4)
}

// attrValue returns the value of the named attribute on n, or "" when the
// attribute is absent.
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// decodeDataURI splits a base64 data URI into raw bytes and the gofpdf
// image type name. Only formats gofpdf can decode are accepted.
func decodeDataURI(src string) ([]byte, string, bool) {
	if !strings.HasPrefix(src, "data:") {
		return nil, "", false
	}
	meta, encoded, found := strings.Cut(strings.TrimPrefix(src, "data:"), ";base64,")
	if !found {
		return nil, "", false
	}

	var imageType string
	switch meta {
	case "image/png":
		imageType = "PNG"
	case "image/gif":
		imageType = "GIF"
	case "image/jpeg", "image/jpg":
		imageType = "JPG"
	default:
		return nil, "", false
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", false
	}
	return data, imageType, true
}

// textContent returns the concatenated text of n's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// rawTextContent is textContent without whitespace collapsing, for
// preformatted blocks.
func rawTextContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

// forEachElement calls fn for every descendant element with the given tag,
// in document order.
func forEachElement(n *html.Node, tag string, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			fn(c)
			continue
		}
		forEachElement(c, tag, fn)
	}
}
