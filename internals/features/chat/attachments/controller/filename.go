package controller

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// NormalizeFilename devolve o nome original em UTF-8. Clientes legados
// (e alguns teclados mobile) mandam o filename em Latin-1; sem a
// transcodificação, acentos viram lixo na tela do app.
func NormalizeFilename(name string) string {
	if utf8.ValidString(name) {
		return name
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(name)
	if err != nil {
		return name
	}
	return decoded
}

// StoredName gera o nome em disco: <timestamp>-<aleatório>.<ext>.
// O conteúdo do nome original nunca vai para o caminho físico; só a
// extensão sobrevive, em minúsculas.
func StoredName(originalName string) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read do crypto não falha na prática; o fallback mantém o
		// nome único o suficiente.
		buf = []byte{0, 0, 0, 0}
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(buf), ext)
}
