// Package pdfext extrai texto de PDFs em memória preservando a estrutura de
// linhas, da qual a resolução de código/nome depende.
package pdfext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extractor adaptador de extração de texto sobre ledongthuc/pdf.
type Extractor struct{}

// NewExtractor constrói o extrator.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText devolve o texto do PDF inteiro. Dentro de uma linha os fragmentos
// são unidos por espaço; linhas e páginas por quebra de linha.
func (e *Extractor) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("abrir pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("ler página %d: %w", i, err)
		}
		for _, row := range rows {
			fragmentos := make([]string, 0, len(row.Content))
			for _, t := range row.Content {
				if s := strings.TrimSpace(t.S); s != "" {
					fragmentos = append(fragmentos, s)
				}
			}
			if len(fragmentos) == 0 {
				continue
			}
			sb.WriteString(strings.Join(fragmentos, " "))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
