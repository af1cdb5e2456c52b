package ports

// TextExtractor define o porto de saída para extração de texto de PDFs.
// A resolução de código/nome sobre o texto extraído fica no domínio.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}
