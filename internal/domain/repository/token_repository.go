package repository

import "github.com/enviagora/hub-api/internal/domain/entity"

// TokenRepository define o porto de persistência para tokens de redefinição de senha.
// Cada identificador mantém no máximo um token vivo: Create apaga os anteriores.
type TokenRepository interface {
	Create(t *entity.VerificationToken) error
	Find(identifier, token string) (*entity.VerificationToken, error)
	Delete(identifier, token string) error
}
