package ooxml

import (
	"fmt"
	"strings"
)

// DocSection is one heading-plus-body block of a word document.
type DocSection struct {
	Title   string
	Content string
}

const docxContentTypes = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const docxRootRels = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// WriteDocx renders a paginated word document: a centered title followed
// by one heading and body per section, in the given order.
func WriteDocx(title string, sections []DocSection) ([]byte, error) {
	var body strings.Builder

	body.WriteString(titleParagraph(title))

	for _, section := range sections {
		body.WriteString(headingParagraph(section.Title))
		for _, line := range splitLines(section.Content) {
			body.WriteString(textParagraph(line))
		}
	}

	document := xmlHeader +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() +
		`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr>` +
		`</w:body></w:document>`

	return writePackage([]part{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/document.xml", document},
	})
}

func titleParagraph(text string) string {
	return fmt.Sprintf(
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`+
			`<w:r><w:rPr><w:b/><w:sz w:val="48"/></w:rPr>`+
			`<w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text))
}

func headingParagraph(text string) string {
	return fmt.Sprintf(
		`<w:p><w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr>`+
			`<w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr>`+
			`<w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text))
}

func textParagraph(text string) string {
	return fmt.Sprintf(
		`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text))
}
