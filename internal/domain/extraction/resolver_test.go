package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Família 1: rótulo "CC:" explícito vence qualquer outro número do documento.
func TestResolve_CodigoComRotuloCC(t *testing.T) {
	text := "EMPRESA LTDA CNPJ 11222333000144 Folha Mensal CC: 4521 Salário 3500,00 Ref 062025"
	r := Resolve(text)
	assert.Equal(t, "4521", r.Codigo)
}

func TestResolve_RotuloCCCaseInsensitive(t *testing.T) {
	r := Resolve("recibo cc:889 total 12,00")
	assert.Equal(t, "889", r.Codigo)
}

// Família 2: sem "CC:", vale o último número do documento — o código do
// funcionário vem impresso depois dos valores monetários e das datas.
func TestResolve_CodigoUltimoNumero(t *testing.T) {
	text := "Salário 2500,00 Desconto 130,55 Competência 06 2025 Líquido 2369,45 7731"
	r := Resolve(text)
	assert.Equal(t, "7731", r.Codigo)
}

func TestResolve_TextoSemNumeros(t *testing.T) {
	r := Resolve("documento sem nenhum identificador")
	assert.Empty(t, r.Codigo)
	assert.Empty(t, r.Nome)
}

// Texto vazio ou só espaços: curto-circuito sem rodar nenhuma estratégia.
func TestResolve_TextoVazio(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		r := Resolve(text)
		assert.Empty(t, r.Nome)
		assert.Empty(t, r.Codigo)
		assert.Equal(t, "", r.FullText, "fullText deve ser vazio para entrada em branco")
	}
}

func TestResolve_FullTextPreservado(t *testing.T) {
	text := "CC: 10 MARIA JOSE DOS SANTOS"
	r := Resolve(text)
	assert.Equal(t, text, r.FullText)
}

// Nome no cabeçalho, entre os rótulos "Código" e "Nome".
func TestResolve_NomeDoCabecalho(t *testing.T) {
	text := "Demonstrativo Código MARIA APARECIDA SOUZA Nome do Funcionário CC: 1234"
	r := Resolve(text)
	assert.Equal(t, "MARIA APARECIDA SOUZA", r.Nome)
	assert.Equal(t, "1234", r.Codigo)
}

func TestResolve_NomeDoCabecalhoColapsaEspacos(t *testing.T) {
	text := "Código   JOÃO   BATISTA   FERREIRA   Nome CC: 7"
	r := Resolve(text)
	assert.Equal(t, "JOÃO BATISTA FERREIRA", r.Nome)
}

// Quando o cabeçalho captura o rótulo "FUNCIONÁRIO" em vez do nome, o rodapé
// (família 2) assume: último bloco em caixa alta que não seja boilerplate.
func TestResolve_CabecalhoMalCapturadoCaiParaRodape(t *testing.T) {
	text := "Código FUNCIONÁRIO MENSALISTA Nome: 99\n" +
		"DECLARO TER RECEBIDO A IMPORTÂNCIA LÍQUIDA DESTE RECIBO. data: 01/07/2025\n" +
		"ASSINATURA DO EMPREGADO: ______\n" +
		"CARLOS EDUARDO PEREIRA 5512"
	r := Resolve(text)
	assert.Equal(t, "CARLOS EDUARDO PEREIRA", r.Nome)
	assert.Equal(t, "5512", r.Codigo)
}

func TestResolve_RodapeFiltraBoilerplate(t *testing.T) {
	text := "recibo n. 10\n" +
		"DECLARO QUE CONFERI OS VALORES. 12/06/2025\n" +
		"ASSINATURA DO FUNCIONÁRIO: ______\n" +
		"JOSE ANTONIO MOREIRA LIMA 881"
	r := Resolve(text)
	assert.Equal(t, "JOSE ANTONIO MOREIRA LIMA", r.Nome)
	assert.Equal(t, "881", r.Codigo)
}

// Fallback herdado: varredura linha a linha em torno do marcador CÓDIGO quando
// cabeçalho e rodapé falham (nome curto demais para o bloco de rodapé).
func TestResolve_FallbackLinhaALinha(t *testing.T) {
	text := "Recibo de Pagamento\nCodigo 123\nANA LIMA\nliquido a receber"
	r := Resolve(text)
	assert.Equal(t, "ANA LIMA", r.Nome)
	assert.Equal(t, "123", r.Codigo)
}

// A linha do próprio marcador nunca vira nome, mesmo estando em caixa alta.
func TestResolve_FallbackIgnoraLinhaDoMarcador(t *testing.T) {
	text := "folha mensal\nCODIGO: 12\nEVA CRUZ\nfim"
	r := Resolve(text)
	assert.Equal(t, "EVA CRUZ", r.Nome)
	assert.Equal(t, "12", r.Codigo)
}

// A varredura olha no máximo 5 linhas a partir do marcador.
func TestResolve_FallbackLimite5Linhas(t *testing.T) {
	text := "recibo 77\ncodigo\nlinha um\nlinha dois\nlinha tres\nlinha quatro\nANA LIMA"
	r := Resolve(text)
	assert.Empty(t, r.Nome, "nome além da janela de 5 linhas não deve ser capturado")
	assert.Equal(t, "77", r.Codigo)
}

// Nome e código são independentes: um pode resolver sem o outro.
func TestResolve_SoNomeSemCodigo(t *testing.T) {
	text := "Código ROBERTA GUIMARÃES MELO Nome do colaborador"
	r := Resolve(text)
	assert.Equal(t, "ROBERTA GUIMARÃES MELO", r.Nome)
	assert.Empty(t, r.Codigo)
}
