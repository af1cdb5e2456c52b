package dto

import "time"

// CreateColaboradorRequest entrada para cadastrar um colaborador. A senha
// provisória é gerada no use case e enviada por e-mail, nunca vem do cliente.
type CreateColaboradorRequest struct {
	Nome                string `json:"nome" validate:"required,min=1,max=200"`
	CPF                 string `json:"cpf" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Role                string `json:"role" validate:"required,oneof=funcionario assistente rh admin"`
	CodigoHolerite      string `json:"codigoHolerite"`
	Matricula           string `json:"matricula"`
	CNPJRegistro        string `json:"cnpjRegistro"`
	Setor               string `json:"setor"`
	Cargo               string `json:"cargo"`
	TelefonePessoal     string `json:"telefonePessoal"`
	TelefoneEmergencial string `json:"telefoneEmergencial"`
	DataNascimento      string `json:"dataNascimento"`
	Idade               int    `json:"idade"`
	EnderecoCompleto    string `json:"enderecoCompleto"`
	Bairro              string `json:"bairro"`
	Cidade              string `json:"cidade"`
}

// UpdateColaboradorRequest entrada para edição; campos vazios preservam o valor
// atual, exceto Role, que sempre é validada contra a hierarquia.
type UpdateColaboradorRequest struct {
	Nome                string `json:"nome"`
	CPF                 string `json:"cpf"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	CodigoHolerite      string `json:"codigoHolerite"`
	Matricula           string `json:"matricula"`
	CNPJRegistro        string `json:"cnpjRegistro"`
	Setor               string `json:"setor"`
	Cargo               string `json:"cargo"`
	TelefonePessoal     string `json:"telefonePessoal"`
	TelefoneEmergencial string `json:"telefoneEmergencial"`
	DataNascimento      string `json:"dataNascimento"`
	Idade               int    `json:"idade"`
	EnderecoCompleto    string `json:"enderecoCompleto"`
	Bairro              string `json:"bairro"`
	Cidade              string `json:"cidade"`
}

// UserResponse saída de um colaborador (sem hash de senha).
type UserResponse struct {
	ID                  string    `json:"id"`
	Nome                string    `json:"nome"`
	CPF                 string    `json:"cpf"`
	Email               string    `json:"email"`
	Role                string    `json:"role"`
	CodigoHolerite      string    `json:"codigoHolerite"`
	Matricula           string    `json:"matricula"`
	CNPJRegistro        string    `json:"cnpjRegistro"`
	Setor               string    `json:"setor"`
	Cargo               string    `json:"cargo"`
	TelefonePessoal     string    `json:"telefonePessoal"`
	TelefoneEmergencial string    `json:"telefoneEmergencial"`
	DataNascimento      string    `json:"dataNascimento"`
	Idade               int       `json:"idade"`
	EnderecoCompleto    string    `json:"enderecoCompleto"`
	Bairro              string    `json:"bairro"`
	Cidade              string    `json:"cidade"`
	MustChangePassword  bool      `json:"mustChangePassword"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
