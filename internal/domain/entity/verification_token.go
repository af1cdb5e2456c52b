package entity

import "time"

// VerificationToken credencial efêmera de redefinição de senha.
// No máximo um token vivo por identifier (e-mail normalizado); uso único.
type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}

// ExpiredAt informa se o token já venceu no instante dado.
func (t VerificationToken) ExpiredAt(now time.Time) bool {
	return t.Expires.Before(now)
}
