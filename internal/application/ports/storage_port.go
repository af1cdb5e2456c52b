package ports

import "context"

// BlobStorage define o porto de saída para o armazenamento de objetos.
// Qualquer adaptador (S3, MinIO, mock) deve implementar esta interface;
// seguindo o princípio de inversão de dependências (DIP), a aplicação só
// conhece este contrato, não a implementação concreta.
type BlobStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// URL devolve o endereço público/presumido de um objeto já gravado.
	URL(key string) string
}
