// Package password gera senhas provisórias para novos colaboradores.
package password

import (
	"crypto/rand"
	"encoding/base64"
	"regexp"
)

var naoAlfanumerico = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Provisoria gera uma senha aleatória alfanumérica com o tamanho dado.
// Bytes aleatórios são codificados em base64 e filtrados para ficar apenas
// com caracteres digitáveis sem ambiguidade de encoding.
func Provisoria(tamanho int) (string, error) {
	if tamanho <= 0 {
		tamanho = 10
	}
	// base64 rende ~4/3 caracteres por byte; lemos o dobro para sobrar após o filtro.
	buf := make([]byte, tamanho*2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	s := naoAlfanumerico.ReplaceAllString(base64.StdEncoding.EncodeToString(buf), "")
	if len(s) > tamanho {
		s = s[:tamanho]
	}
	return s, nil
}
