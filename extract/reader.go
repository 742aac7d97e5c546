// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/poiesic/docmerge/core"
)

// Reader pulls raw content out of a source document on disk.
type Reader interface {
	Read(path string, format core.Format) (Raw, error)
}

// OSReader reads documents from the local filesystem.
type OSReader struct{}

func (OSReader) Read(path string, format core.Format) (Raw, error) {
	raw := Raw{Path: path, Format: format}

	var content string
	var err error
	switch format {
	case core.FormatTxt:
		content, err = readTextFile(path)
	case core.FormatPDF:
		content, err = readPDFText(path)
	case core.FormatDocx:
		content, err = docxToHTML(path)
	case core.FormatPptx:
		content, err = pptxToHTML(path)
	default:
		err = &core.UnsupportedFormatError{Ext: format.String()}
	}
	if err != nil {
		return Raw{}, err
	}

	raw.Content = content
	return raw, nil
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// docxToHTML converts the main document part of a docx package into
// the HTML intermediate. Heading paragraph styles become h1 through
// h6, everything else becomes p, and tables become HTML tables with
// the cell text flattened.
func docxToHTML(path string) (string, error) {
	data, err := readZipEntry(path, "word/document.xml")
	if err != nil {
		return "", err
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))

	var out strings.Builder
	var paraText strings.Builder
	var cellText strings.Builder
	var paraStyle string
	inPara := false
	inRun := false
	tableDepth := 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse docx document part: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					out.WriteString("<table>")
				}
			case "tr":
				if tableDepth == 1 {
					out.WriteString("<tr>")
				}
			case "tc":
				if tableDepth == 1 {
					cellText.Reset()
				}
			case "p":
				if tableDepth == 0 {
					inPara = true
					paraStyle = ""
					paraText.Reset()
				}
			case "pStyle":
				if inPara && tableDepth == 0 {
					for _, attr := range tok.Attr {
						if attr.Name.Local == "val" {
							paraStyle = attr.Value
						}
					}
				}
			case "t":
				inRun = true
			case "br", "cr":
				if tableDepth > 0 {
					cellText.WriteString(" ")
				} else if inPara {
					paraText.WriteString(" ")
				}
			}
		case xml.CharData:
			if !inRun {
				continue
			}
			if tableDepth > 0 {
				cellText.Write(tok)
			} else if inPara {
				paraText.Write(tok)
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "t":
				inRun = false
			case "p":
				if tableDepth > 0 {
					cellText.WriteString(" ")
					continue
				}
				if !inPara {
					continue
				}
				inPara = false
				text := strings.Join(strings.Fields(paraText.String()), " ")
				if text == "" {
					continue
				}
				tag := docxParagraphTag(paraStyle)
				out.WriteString("<" + tag + ">" + html.EscapeString(text) + "</" + tag + ">")
			case "tc":
				if tableDepth == 1 {
					text := strings.Join(strings.Fields(cellText.String()), " ")
					out.WriteString("<td>" + html.EscapeString(text) + "</td>")
				}
			case "tr":
				if tableDepth == 1 {
					out.WriteString("</tr>")
				}
			case "tbl":
				tableDepth--
				if tableDepth == 0 {
					out.WriteString("</table>")
				}
			}
		}
	}

	return out.String(), nil
}

// docxParagraphTag maps a Word paragraph style to an HTML tag.
func docxParagraphTag(style string) string {
	if style == "Title" {
		return "h1"
	}
	if rest, ok := strings.CutPrefix(style, "Heading"); ok && len(rest) == 1 {
		if level := int(rest[0] - '0'); level >= 1 && level <= 9 {
			if level > 6 {
				level = 6
			}
			return fmt.Sprintf("h%d", level)
		}
	}
	return "p"
}

// pptxToHTML converts the slides of a pptx package into the HTML
// intermediate. Slides are visited in deck order; title placeholders
// become h2 headings and body text becomes paragraphs.
func pptxToHTML(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer archive.Close()

	type slide struct {
		number int
		file   *zip.File
	}
	var slides []slide
	for _, f := range archive.File {
		var n int
		if _, err := fmt.Sscanf(f.Name, "ppt/slides/slide%d.xml", &n); err == nil {
			slides = append(slides, slide{number: n, file: f})
		}
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var out strings.Builder
	for _, s := range slides {
		rc, err := s.file.Open()
		if err != nil {
			return "", err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		if err := slideToHTML(data, &out); err != nil {
			return "", fmt.Errorf("failed to parse slide %d: %w", s.number, err)
		}
	}
	return out.String(), nil
}

func slideToHTML(data []byte, out *strings.Builder) error {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var paraText strings.Builder
	shapeIsTitle := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "sp":
				shapeIsTitle = false
			case "ph":
				for _, attr := range tok.Attr {
					if attr.Name.Local == "type" && (attr.Value == "title" || attr.Value == "ctrTitle") {
						shapeIsTitle = true
					}
				}
			case "p":
				paraText.Reset()
			case "t":
				inText = true
			}
		case xml.CharData:
			if inText {
				paraText.Write(tok)
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "t":
				inText = false
			case "p":
				text := strings.Join(strings.Fields(paraText.String()), " ")
				if text == "" {
					continue
				}
				tag := "p"
				if shapeIsTitle {
					tag = "h2"
				}
				out.WriteString("<" + tag + ">" + html.EscapeString(text) + "</" + tag + ">")
			}
		}
	}
}

func readZipEntry(path, name string) ([]byte, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	for _, f := range archive.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, errors.New("missing archive entry " + name)
}
