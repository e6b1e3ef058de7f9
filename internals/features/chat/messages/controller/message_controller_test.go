package controller

import (
	"testing"

	"harmonia_backend/internals/constants"
	dto "harmonia_backend/internals/features/chat/messages/dto"
)

func strPtr(s string) *string { return &s }

func TestHasContent(t *testing.T) {
	cases := []struct {
		name string
		req  dto.SendMessageRequest
		want bool
	}{
		{"texto", dto.SendMessageRequest{MessageText: "oi"}, true},
		{"só espaços", dto.SendMessageRequest{MessageText: "   "}, false},
		{"vazio", dto.SendMessageRequest{}, false},
		{"anexo sem texto", dto.SendMessageRequest{FileURL: strPtr("/uploads/x.pdf")}, true},
		{"anexo vazio", dto.SendMessageRequest{FileURL: strPtr("  ")}, false},
	}
	for _, tc := range cases {
		if got := tc.req.HasContent(); got != tc.want {
			t.Errorf("%s: HasContent = %v, esperado %v", tc.name, got, tc.want)
		}
	}
}

func TestResolveMessageType(t *testing.T) {
	// Tipo declarado vence sempre, mesmo que a extensão discorde.
	declared := dto.SendMessageRequest{MessageType: constants.MessageTypeAudio, FileName: strPtr("x.png")}
	if got := resolveMessageType(&declared); got != constants.MessageTypeAudio {
		t.Errorf("tipo declarado deveria prevalecer, veio %s", got)
	}

	byName := dto.SendMessageRequest{FileName: strPtr("foto.jpg")}
	if got := resolveMessageType(&byName); got != constants.MessageTypeImage {
		t.Errorf("fallback por nome: %s, esperado IMAGE", got)
	}

	byURL := dto.SendMessageRequest{FileURL: strPtr("/uploads/123-ab.mp3")}
	if got := resolveMessageType(&byURL); got != constants.MessageTypeAudio {
		t.Errorf("fallback por URL: %s, esperado AUDIO", got)
	}

	plain := dto.SendMessageRequest{MessageText: "olá"}
	if got := resolveMessageType(&plain); got != constants.MessageTypeText {
		t.Errorf("sem anexo: %s, esperado TEXT", got)
	}
}
