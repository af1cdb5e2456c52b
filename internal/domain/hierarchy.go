package domain

import "github.com/enviagora/hub-api/internal/domain/entity"

// AuthorizeRoles decide se um ator pode acessar um recurso restrito a certos papéis.
// As roles permitidas funcionam como piso de nível, não como whitelist exata: basta
// o nível do ator ser >= ao nível de alguma das permitidas.
// Sem ator (papel vazio) -> ErrNaoAutenticado; papel desconhecido ou nível
// insuficiente -> ErrProibido.
func AuthorizeRoles(ator entity.Role, permitidas ...entity.Role) error {
	if ator == "" {
		return ErrNaoAutenticado
	}
	if !ator.Valid() {
		return ErrProibido
	}
	nivel := ator.Level()
	for _, p := range permitidas {
		if nivel >= p.Level() {
			return nil
		}
	}
	return ErrProibido
}

// AuthorizeMutation decide se um ator pode criar, editar ou excluir um registro
// com o papel alvo. Regras avaliadas em ordem:
//  1. admin sempre pode;
//  2. rh não age sobre rh;
//  3. assistente não age sobre assistente;
//  4. ninguém age sobre o próprio nível ou acima.
//
// Não há regra de pares para funcionario nem para admin; a assimetria vem do
// comportamento de produção e é mantida de propósito.
// Edições que trocam o papel devem chamar duas vezes: contra o papel atual e
// contra o papel pretendido.
func AuthorizeMutation(ator, alvo entity.Role) error {
	if ator == "" {
		return ErrNaoAutenticado
	}
	if !ator.Valid() {
		return ErrProibido
	}
	if ator == entity.RoleAdmin {
		return nil
	}
	if ator == entity.RoleRH && alvo == entity.RoleRH {
		return ErrProibido
	}
	if ator == entity.RoleAssistente && alvo == entity.RoleAssistente {
		return ErrProibido
	}
	if ator.Level() <= alvo.Level() {
		return ErrProibido
	}
	return nil
}
