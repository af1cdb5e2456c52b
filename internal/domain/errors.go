package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrNaoAutenticado       = errors.New("não autenticado")
	ErrProibido             = errors.New("acesso negado")
	ErrConflito             = errors.New("conflito com o estado atual")
	ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")
	ErrTokenInvalido        = errors.New("token inválido ou expirado")
)
