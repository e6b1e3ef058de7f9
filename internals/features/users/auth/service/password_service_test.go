package service

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("hash não pode ser a senha em texto puro")
	}
	if !CheckPasswordHash("secret1", hash) {
		t.Fatalf("senha correta deveria conferir")
	}
	if CheckPasswordHash("errada", hash) {
		t.Fatalf("senha errada não deveria conferir")
	}
}

func TestPasswordHashingSaltsDiffer(t *testing.T) {
	h1, _ := HashPassword("secret1")
	h2, _ := HashPassword("secret1")
	if h1 == h2 {
		t.Fatalf("dois hashes da mesma senha deveriam ter salts diferentes")
	}
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	// Hash malformado nunca estoura, só não confere.
	if CheckPasswordHash("qualquer", "isto-não-é-um-hash-bcrypt") {
		t.Fatalf("hash malformado não deveria conferir")
	}
	if CheckPasswordHash("qualquer", "") {
		t.Fatalf("hash vazio não deveria conferir")
	}
}
