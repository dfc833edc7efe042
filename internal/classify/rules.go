package classify

import "regexp"

// rule pairs a compiled pattern with a stable name so matches stay
// explainable in the output and rules can be tested individually.
type rule struct {
	name string
	re   *regexp.Regexp
}

// metadataPrefixes reject lines that open a campaign-metadata section.
// Compared against the upper-cased, punctuation-collapsed line.
var metadataPrefixes = []string{
	"CLIENTE", "PERÍODO", "PERIODO", "FORMATO", "QUANTIDADE",
	"PRODUTO", "CAMPANHA", "VEÍCULO", "VEICULO", "VEICULAR",
	"OBSERVAÇÃO", "OBSERVACAO", "OBS", "CONTRATO", "REFERÊNCIA",
	"REFERENCIA", "TIPO", "MATERIAL", "DIMENSÃO", "DIMENSAO",
	"PRAÇA", "PRACA", "IMPRESSÃO", "IMPRESSAO", "ILUMINAÇÃO",
	"ILUMINACAO", "EXIBIÇÃO", "EXIBICAO", "MEDIDA", "VALOR",
	"TOTAL", "SUBTOTAL", "DESCONTO", "CUSTO", "BONIFICAÇÃO",
	"BONIFICACAO", "TABELA", "NEGOCIAÇÃO", "NEGOCIACAO",
	"VIGÊNCIA", "VIGENCIA", "INÍCIO", "INICIO", "TÉRMINO",
	"TERMINO", "FIM", "DATA", "VALIDADE",
}

// sectionHeaders reject lines that are exactly a listing header.
var sectionHeaders = map[string]struct{}{
	"ENDEREÇO":             {},
	"ENDERECO":             {},
	"ENDEREÇOS":            {},
	"ENDERECOS":            {},
	"ENDEREÇO(S)":          {},
	"ENDERECO(S)":          {},
	"LOCAIS":               {},
	"LOCAL":                {},
	"PONTOS":               {},
	"PONTO DE EXIBIÇÃO":    {},
	"PONTO DE EXIBICAO":    {},
	"LISTA DE ENDEREÇOS":   {},
	"LISTA DE ENDERECOS":   {},
	"PONTOS DE OUTDOOR":    {},
	"PONTOS DE FRONTLIGHT": {},
	"RELAÇÃO DE ENDEREÇOS": {},
	"RELACAO DE ENDERECOS": {},
}

// noiseRules reject fragments that show up inside placement listings but are
// not addresses: face/orientation notes, measurements, material descriptors,
// relative-position remarks, unit counts.
var noiseRules = []rule{
	{"stars", regexp.MustCompile(`^\*{2,}`)},
	{"face", regexp.MustCompile(`(?i)^FACE\b`)},
	{"direction", regexp.MustCompile(`(?i)^SENTIDO\b`)},
	{"side", regexp.MustCompile(`(?i)^LADO\b`)},
	{"position", regexp.MustCompile(`(?i)^(POSIÇÃO|POSICAO)`)},
	{"note", regexp.MustCompile(`(?i)^(OBS|NOTA)[:.]`)},
	{"attention", regexp.MustCompile(`(?i)^(ATENÇÃO|ATENCAO|IMPORTANTE)`)},
	{"near", regexp.MustCompile(`(?i)^(PRÓXIMO|PROXIMO)\s+(A|AO|DA|DO|DE)\b`)},
	{"in-front", regexp.MustCompile(`(?i)^EM\s+FRENTE`)},
	{"between", regexp.MustCompile(`(?i)^ENTRE\s`)},
	{"after-before", regexp.MustCompile(`(?i)^(APÓS|APOS|ANTES)\b`)},
	{"measure", regexp.MustCompile(`(?i)^\d+\s*(M|METROS?|CM)\b`)},
	{"dimensions", regexp.MustCompile(`^\d+[.,]\d+\s*[xX]\s*\d+`)},
	{"orientation", regexp.MustCompile(`(?i)^(HORIZONTAL|VERTICAL|DIAGONAL)`)},
	{"display-kind", regexp.MustCompile(`(?i)^(DIGITAL|ANALÓGICO|ANALOGICO|ESTÁTICO|ESTATICO)`)},
	{"material", regexp.MustCompile(`(?i)^(CHAPA|LONA|BACKLIGHT|FRONTLIGHT|PAINEL)`)},
	{"lighting", regexp.MustCompile(`(?i)^(ILUMINAD[OA]|SEM\s+ILUMINA)`)},
	{"unit-count", regexp.MustCompile(`(?i)^\d+\s*UN(IDADES?)?`)},
	{"period", regexp.MustCompile(`(?i)^(PERÍODO|PERIODO)\b`)},
	{"numeric-only", regexp.MustCompile(`^\d+$`)},
	{"punct-only", regexp.MustCompile(`^[\s=\-_*#.;:,/\\()\[\]{}]+$`)},
}

// acceptRules match lines that look like Brazilian street addresses. A line
// must match at least one of these after surviving every reject.
var acceptRules = []rule{
	{"street:rua", regexp.MustCompile(`(?i)\b(RUA|R\.)\s+\S`)},
	{"street:avenida", regexp.MustCompile(`(?i)\b(AVENIDA|AV\.)\s+\S`)},
	{"street:alameda", regexp.MustCompile(`(?i)\b(ALAMEDA|AL\.)\s+\S`)},
	{"street:travessa", regexp.MustCompile(`(?i)\b(TRAVESSA|TV\.)\s+\S`)},
	{"street:rodovia", regexp.MustCompile(`(?i)\b(RODOVIA|ROD\.)\s+\S`)},
	{"street:estrada", regexp.MustCompile(`(?i)\b(ESTRADA|EST\.)\s+\S`)},
	{"street:praca", regexp.MustCompile(`(?i)\b(PRAÇA|PRACA|PÇA\.?)\s+\S`)},
	{"street:largo", regexp.MustCompile(`(?i)\b(LARGO|VIELA|BECO)\s+\S`)},
	{"street:vila", regexp.MustCompile(`(?i)\bVILA\s+\S`)},
	{"street:marginal", regexp.MustCompile(`(?i)\b(MARGINAL|MG\.?)\s+\S`)},
	{"street:viaduto", regexp.MustCompile(`(?i)\b(VIADUTO|VD\.)\s+\S`)},
	{"street:ponte", regexp.MustCompile(`(?i)\bPONTE\s+\S`)},
	{"street:anel", regexp.MustCompile(`(?i)\bANEL\s+(VIÁRIO|VIARIO|RODOVIÁRIO|RODOVIARIO)`)},
	{"street:trecho", regexp.MustCompile(`(?i)\b(TRECHO|TREVO)\s+\S`)},
	{"street:contorno", regexp.MustCompile(`(?i)\bCONTORNO\s+\S`)},
	{"state-route", regexp.MustCompile(`(?i)\b(BR|SP|RJ|MG|MS|PR|SC|RS|BA|GO|MT|PA|CE|PE|MA|PI|AM|RN|ES|SE|AL|TO|RO|RR|AP|AC|DF)\s*-\s*\d{2,3}`)},
	{"km-marker", regexp.MustCompile(`(?i)\bKM\s*\d`)},
	{"cep", regexp.MustCompile(`\b\d{5}\s*-?\s*\d{3}\b`)},
	{"house-number", regexp.MustCompile(`(?i)\bN[°ºO]?\s*\d{1,5}\b`)},
	{"corner", regexp.MustCompile(`(?i)\bESQ(UINA)?\.?\s+(R\.|RUA|AV\.|AVENIDA)`)},
	{"crossing", regexp.MustCompile(`(?i)\b(CRUZAMENTO|ROTATÓRIA|ROTATORIA)\s+(COM|DA|DE|DO)\s+\S`)},
	{"state-suffix", regexp.MustCompile(`(?i)[-/]\s*(AC|AL|AP|AM|BA|CE|DF|ES|GO|MA|MT|MS|MG|PA|PB|PR|PE|PI|RJ|RN|RS|RO|RR|SC|SP|SE|TO)\s*$`)},
}

// prefixStrips remove list markers and generic labels before classification.
// Applied in order, each at most once.
var prefixStrips = []*regexp.Regexp{
	regexp.MustCompile(`^\*+\s*`),
	regexp.MustCompile(`^\d{1,3}\s*[).:\-–—]\s*`),
	regexp.MustCompile(`(?i)^PONTO\s*\d*\s*[:.;\-–—]?\s*`),
	regexp.MustCompile(`(?i)^END(ER(E[CÇ]O)?)?\.?\s*:?\s*`),
	regexp.MustCompile(`(?i)^LOCAL\s*[:.;\-–—]\s*`),
}

// shortLineAbbrev lets very short lines through when they carry a street-type
// abbreviation, e.g. "R. Sé 1".
var shortLineAbbrev = regexp.MustCompile(`(?i)\b(R|AV|AL|TV)\.`)

// punctRun collapses label punctuation when testing metadata prefixes, so
// "CLIENTE: Acme" and "CLIENTE - Acme" reject alike.
var punctRun = regexp.MustCompile(`[:.;,*#=\-–—]+`)
