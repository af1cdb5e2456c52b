// Package extraction recupera código e nome do funcionário a partir do texto
// bruto de um holerite em PDF. Suporta duas famílias de layout conhecidas mais
// um fallback linha a linha herdado; tudo aqui é puro (sem I/O) e nunca retorna
// erro: falha de resolução vira campo vazio no Result.
package extraction

import "strings"

// Result resultado da extração de um arquivo. Nome e Codigo vazios significam
// "não resolvido"; FullText carrega o texto completo para diagnóstico.
type Result struct {
	Nome     string
	Codigo   string
	FullText string
}

// codeStrategy estratégia nomeada de resolução de código.
type codeStrategy struct {
	name string
	fn   func(text string) string
}

// Estratégias de código, em ordem; a primeira que acertar vence.
var codeStrategies = []codeStrategy{
	{"rotulo-cc", codeFromCCLabel},
	{"ultimo-numero", codeFromLastNumber},
}

// Resolve extrai código e nome do texto completo de um holerite.
//
// Código: rótulo explícito "CC:" (família 1) e, na falta, o último número do
// documento (família 2 imprime o código do funcionário depois de valores e
// datas). Nome: captura de cabeçalho entre "Código" e "Nome", depois blocos em
// caixa alta no rodapé, e por fim a varredura de linhas herdada quando código
// ou nome seguem em aberto.
func Resolve(fullText string) Result {
	if strings.TrimSpace(fullText) == "" {
		return Result{FullText: ""}
	}

	r := Result{FullText: fullText}

	for _, s := range codeStrategies {
		if c := s.fn(fullText); c != "" {
			r.Codigo = c
			break
		}
	}

	// Tentativa A: entre "Código" e "Nome" no cabeçalho (família 1).
	r.Nome = nameFromHeader(fullText)

	// Tentativa B: a captura de cabeçalho pode engolir o rótulo "FUNCIONÁRIO"
	// quando o layout não tem o nome ali; nesse caso (ou sem captura nenhuma)
	// vale o último bloco em caixa alta do rodapé (família 2).
	if r.Nome == "" || strings.Contains(r.Nome, "FUNCIONÁRIO") {
		if alt := nameFromFooterBlocks(fullText); alt != "" {
			r.Nome = alt
		}
	}

	if r.Codigo == "" || r.Nome == "" {
		legacyLineScan(fullText, &r)
	}

	return r
}

// legacyLineScan varredura linha a linha em torno de um marcador CÓDIGO/CODIGO.
// Só preenche o que ainda estiver vazio em r.
func legacyLineScan(fullText string, r *Result) {
	var lines []string
	for _, l := range strings.Split(fullText, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	for i, line := range lines {
		upper := strings.ToUpper(line)
		if !strings.Contains(upper, "CÓDIGO") && !strings.Contains(upper, "CODIGO") {
			continue
		}
		if r.Codigo == "" {
			if i > 0 && isOnlyNumber(lines[i-1]) {
				r.Codigo = lines[i-1]
			} else if m := firstNumberRun(line); m != "" {
				r.Codigo = m
			}
		}
		if r.Nome == "" {
			// o nome costuma vir em até 5 linhas depois do marcador
			for j := i; j < i+5 && j < len(lines); j++ {
				lineUpper := strings.ToUpper(lines[j])
				if isLikelyName(lines[j]) &&
					!strings.Contains(lineUpper, "CÓDIGO") &&
					!strings.Contains(lineUpper, "NOME") {
					r.Nome = lines[j]
					break
				}
			}
		}
		if r.Codigo != "" && r.Nome != "" {
			break
		}
	}
}
