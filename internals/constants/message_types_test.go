package constants

import "testing"

func TestDetectMessageTypeFromExt(t *testing.T) {
	cases := map[string]string{
		"foto.JPG":        MessageTypeImage,
		"print.png":       MessageTypeImage,
		"aula.mp4":        MessageTypeVideo,
		"ensaio.MOV":      MessageTypeVideo,
		"exercicio.mp3":   MessageTypeAudio,
		"gravação.ogg":    MessageTypeAudio,
		"partitura.pdf":   MessageTypeFile,
		"apostila.docx":   MessageTypeFile,
		"sem_extensao":    MessageTypeFile,
		"arquivo.desconh": MessageTypeFile,
	}
	for name, want := range cases {
		if got := DetectMessageTypeFromExt(name); got != want {
			t.Errorf("DetectMessageTypeFromExt(%q) = %s, esperado %s", name, got, want)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("papel %s deveria ser válido", r)
		}
	}
	for _, r := range []string{"", "student", "ROOT", "PROFESSOR"} {
		if IsValidRole(r) {
			t.Errorf("papel %q não deveria ser válido", r)
		}
	}
}
