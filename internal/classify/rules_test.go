package classify

import "testing"

// Every accept rule should fire for at least one realistic sample, so a rule
// edit that silently breaks a pattern shows up here.
func TestAcceptRules_Samples(t *testing.T) {
	samples := map[string]string{
		"street:rua":      "Rua das Flores, 123",
		"street:avenida":  "Av. Paulista, 1000",
		"street:alameda":  "Alameda Santos, 45",
		"street:travessa": "Tv. do Comércio 8",
		"street:rodovia":  "Rodovia dos Bandeirantes",
		"street:estrada":  "Est. do Campo Limpo 340",
		"street:praca":    "Pça. Ramos de Azevedo",
		"street:largo":    "Largo da Batata",
		"street:vila":     "Vila Madalena, acesso 2",
		"street:marginal": "Marginal Pinheiros",
		"street:viaduto":  "Viaduto do Chá",
		"street:ponte":    "Ponte Estaiada, pista sul",
		"street:anel":     "Anel Viário Norte",
		"street:trecho":   "Trevo de Bonsucesso",
		"street:contorno": "Contorno Leste, acesso 4",
		"state-route":     "GO-060, sentido capital",
		"km-marker":       "KM 18 pista norte",
		"cep":             "01310-100",
		"house-number":    "Nº 1500",
		"corner":          "Esquina Rua Direita",
		"crossing":        "Rotatória da entrada sul",
		"state-suffix":    "Setor oeste - GO",
	}

	for name, sample := range samples {
		rule, ok := findAcceptRule(name)
		if !ok {
			t.Errorf("accept rule %q missing", name)
			continue
		}
		if !rule.re.MatchString(sample) {
			t.Errorf("rule %q did not match %q", name, sample)
		}
	}
}

func findAcceptRule(name string) (rule, bool) {
	for _, r := range acceptRules {
		if r.name == name {
			return r, true
		}
	}
	return rule{}, false
}

func TestNoiseRules_DoNotMatchAddresses(t *testing.T) {
	addresses := []string{
		"Rua das Flores, 123",
		"Av. Paulista, 1000 - SP",
		"Rod. Anhanguera, KM 23",
		"Praça da Sé s/n",
	}
	for _, addr := range addresses {
		for _, r := range noiseRules {
			if r.re.MatchString(addr) {
				t.Errorf("noise rule %q matched address %q", r.name, addr)
			}
		}
	}
}

func TestMetadataPrefixes_ContainCoreVocabulary(t *testing.T) {
	want := []string{"CLIENTE", "PERÍODO", "FORMATO", "QUANTIDADE", "CAMPANHA", "OBS", "VALOR", "VIGÊNCIA"}
	set := make(map[string]struct{}, len(metadataPrefixes))
	for _, p := range metadataPrefixes {
		set[p] = struct{}{}
	}
	for _, w := range want {
		if _, ok := set[w]; !ok {
			t.Errorf("metadata prefix %q missing", w)
		}
	}
}
