package extraction

import (
	"regexp"
	"strings"
)

var (
	reCodigoCC     = regexp.MustCompile(`(?i)CC:\s*(\d+)`)
	reNumeros      = regexp.MustCompile(`\d+`)
	reSoNumeros    = regexp.MustCompile(`^\d+$`)
	reEspacos      = regexp.MustCompile(`\s+`)
	reNomeCabecalho = regexp.MustCompile(`(?i)Código\s+([A-ZÁÀÂÃÉÈÊÍÏÓÔÕÖÚÇÑ\s]{5,100}?)\s+Nome`)
	reBlocoCaixaAlta = regexp.MustCompile(`[A-ZÁÀÂÃÉÈÊÍÏÓÔÕÖÚÇÑ\s]{10,}`)
	reNomeProvavel   = regexp.MustCompile(`^[A-ZÁÀÂÃÉÈÊÍÏÓÔÕÖÚÇÑ ]+$`)
)

// codeFromCCLabel família 1: rótulo "CC:" seguido de dígitos.
func codeFromCCLabel(text string) string {
	if m := reCodigoCC.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// codeFromLastNumber família 2: o código do funcionário é o último número
// isolado do documento, depois de valores monetários e datas.
func codeFromLastNumber(text string) string {
	all := reNumeros.FindAllString(text, -1)
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1]
}

// nameFromHeader captura entre "Código" e "Nome" no cabeçalho; aceita apenas
// resultados com mais de 5 caracteres após trim e colapso de espaços.
func nameFromHeader(text string) string {
	m := reNomeCabecalho.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	nome := strings.TrimSpace(m[1])
	if len([]rune(nome)) <= 5 {
		return ""
	}
	return reEspacos.ReplaceAllString(nome, " ")
}

// nameFromFooterBlocks coleta os blocos em caixa alta com 10+ caracteres,
// descarta rótulos de boilerplate (declaração/assinatura) e devolve o último
// bloco restante — na família 2 o nome impresso do signatário fica no fim.
func nameFromFooterBlocks(text string) string {
	blocos := reBlocoCaixaAlta.FindAllString(text, -1)
	if blocos == nil {
		return ""
	}
	var candidatos []string
	for _, b := range blocos {
		b = reEspacos.ReplaceAllString(strings.TrimSpace(b), " ")
		if len([]rune(b)) > 10 &&
			!strings.Contains(b, "DECLARO") &&
			!strings.Contains(b, "ASSINATURA") {
			candidatos = append(candidatos, b)
		}
	}
	if len(candidatos) == 0 {
		return ""
	}
	return candidatos[len(candidatos)-1]
}

// isOnlyNumber linha composta apenas por dígitos.
func isOnlyNumber(s string) bool {
	return reSoNumeros.MatchString(strings.TrimSpace(s))
}

// firstNumberRun primeira sequência de dígitos da linha, ou vazio.
func firstNumberRun(s string) string {
	return reNumeros.FindString(s)
}

// isLikelyName linha inteira em caixa alta (com vogais acentuadas do pt-BR) e
// mais de 5 caracteres após trim.
func isLikelyName(s string) bool {
	t := strings.TrimSpace(s)
	return reNomeProvavel.MatchString(t) && len([]rune(t)) > 5
}
