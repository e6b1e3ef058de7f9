package service

import "testing"

func TestGenerateResetCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := GenerateResetCode()
		if err != nil {
			t.Fatalf("gerar código: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("código %q deveria ter 6 dígitos", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("código %q contém caractere não numérico", code)
			}
		}
		seen[code] = true
	}
	// 200 sorteios de um espaço de 1M praticamente nunca colidem todos.
	if len(seen) < 150 {
		t.Fatalf("códigos pouco variados: %d únicos em 200", len(seen))
	}
}
