package entity

import "time"

// User representa um colaborador da empresa (tabela users).
// CodigoHolerite é a chave de casamento com o código extraído dos PDFs de
// holerite; pode estar vazio para quem ainda não tem código cadastrado.
type User struct {
	ID                  string
	Nome                string
	CPF                 string
	Email               string
	SenhaHash           string
	Role                Role
	CodigoHolerite      string
	Matricula           string
	CNPJRegistro        string
	Setor               string
	Cargo               string
	TelefonePessoal     string
	TelefoneEmergencial string
	DataNascimento      string
	Idade               int
	EnderecoCompleto    string
	Bairro              string
	Cidade              string
	MustChangePassword  bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
