package entity

// Role papel de um usuário no portal. Conjunto fechado, com ordem total de
// autoridade definida por Level.
type Role string

const (
	RoleFuncionario Role = "funcionario"
	RoleAssistente  Role = "assistente"
	RoleRH          Role = "rh"
	RoleAdmin       Role = "admin"
)

// níveis de autoridade: quanto maior, mais poder.
var roleLevels = map[Role]int{
	RoleFuncionario: 1,
	RoleAssistente:  2,
	RoleRH:          3,
	RoleAdmin:       4,
}

// Level devolve o nível de autoridade do papel; 0 para papéis desconhecidos ou vazios.
func (r Role) Level() int {
	return roleLevels[r]
}

// Valid informa se o papel pertence ao conjunto conhecido.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}
