// Package ooxml writes minimal Office Open XML packages (docx and pptx)
// using only archive/zip and hand-assembled part XML. The output targets
// the ECMA-376 transitional schemas that Word and PowerPoint read.
package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

type part struct {
	name    string
	content string
}

// writePackage assembles the parts into an OPC zip container. Part order
// follows the conventional layout with [Content_Types].xml first.
func writePackage(parts []part) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("failed to write part %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize package: %w", err)
	}

	return buf.Bytes(), nil
}

// escape encodes text for embedding in part XML.
func escape(s string) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

// splitLines breaks free text into non-empty paragraph lines.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
