package services

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindDOCX DocumentKind = "docx"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// DetectKind maps a filename to a supported document kind by its
// case-insensitive suffix.
func DetectKind(filename string) (DocumentKind, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return KindPDF, nil
	case strings.HasSuffix(lower, ".docx"):
		return KindDOCX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func (k DocumentKind) Extension() string {
	return "." + string(k)
}

type DocumentParserService interface {
	ExtractText(filePath string, kind DocumentKind) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

func (p *documentParserService) ExtractText(filePath string, kind DocumentKind) (string, error) {
	switch kind {
	case KindPDF:
		return extractPDFText(filePath)
	case KindDOCX:
		return extractDOCXText(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
}

// extractPDFText concatenates the plain text of every page in page order.
func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read PDF page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

// extractDOCXText writes each paragraph's text followed by a newline, in
// document order.
func extractDOCXText(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	paragraphs, err := docxParagraphs(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX body: %w", err)
	}

	var textBuilder strings.Builder
	for _, para := range paragraphs {
		textBuilder.WriteString(para)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

// docxParagraphs walks WordprocessingML and returns the text of every w:p
// element. Only w:t runs contribute text, so deleted runs and field codes
// are skipped. Text box content (w:txbxContent) is anchored inside a body
// paragraph but is not part of it and is dropped.
func docxParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
		inProps    bool
		textBoxes  int
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "txbxContent" {
			textBoxes++
			continue
		}
		if end, ok := tok.(xml.EndElement); ok && end.Name.Local == "txbxContent" {
			textBoxes--
			continue
		}
		if textBoxes > 0 {
			continue
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "pPr":
				inProps = true
			case "t":
				inText = depth > 0
			case "tab":
				// w:tab inside w:pPr declares a tab stop, not a character.
				if depth > 0 && !inProps {
					current.WriteString("\t")
				}
			case "br", "cr":
				if depth > 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "pPr":
				inProps = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
