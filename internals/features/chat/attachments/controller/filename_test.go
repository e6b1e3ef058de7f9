package controller

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNormalizeFilenameUTF8PassesThrough(t *testing.T) {
	name := "partitura-violão.pdf"
	if got := NormalizeFilename(name); got != name {
		t.Fatalf("nome já em UTF-8 não deveria mudar: %q → %q", name, got)
	}
}

func TestNormalizeFilenameLatin1(t *testing.T) {
	// "violão.pdf" codificado em Latin-1: 0xE3 no lugar do ã.
	latin1 := "viol\xe3o.pdf"
	if utf8.ValidString(latin1) {
		t.Fatalf("fixture deveria ser UTF-8 inválido")
	}

	got := NormalizeFilename(latin1)
	if !utf8.ValidString(got) {
		t.Fatalf("resultado deveria ser UTF-8 válido: %q", got)
	}
	if got != "violão.pdf" {
		t.Fatalf("NormalizeFilename = %q, esperado violão.pdf", got)
	}
}

func TestStoredNameShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+-[0-9a-f]{8}\.pdf$`)

	name := StoredName("Apostila Módulo 1.PDF")
	if !pattern.MatchString(name) {
		t.Fatalf("nome gerado %q fora do formato <timestamp>-<aleatório>.<ext>", name)
	}
	if strings.Contains(name, " ") {
		t.Fatalf("nome em disco não pode ter espaço: %q", name)
	}
}

func TestStoredNameUnique(t *testing.T) {
	a := StoredName("a.png")
	b := StoredName("a.png")
	if a == b {
		t.Fatalf("dois uploads do mesmo arquivo deveriam ganhar nomes distintos")
	}
}

func TestStoredNameNoExtension(t *testing.T) {
	name := StoredName("semextensao")
	if strings.Contains(name, ".") {
		t.Fatalf("arquivo sem extensão não deveria ganhar uma: %q", name)
	}
}
