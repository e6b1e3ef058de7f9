package dto

import "strings"

// SendMessageRequest — ou texto não vazio, ou um anexo já enviado pelo
// upload. O tipo declarado pelo cliente é armazenado como veio; quando
// ausente, cai no fallback por extensão do arquivo.
type SendMessageRequest struct {
	ReceiverID  string  `json:"receiverId" validate:"required,uuid4"`
	MessageText string  `json:"messageText"`
	MessageType string  `json:"messageType" validate:"omitempty,oneof=TEXT IMAGE VIDEO AUDIO FILE"`
	FileURL     *string `json:"fileUrl"`
	FileName    *string `json:"fileName"`
	FileSize    *int64  `json:"fileSize"`
}

// HasContent diz se a mensagem carrega alguma coisa: texto ou anexo.
func (r *SendMessageRequest) HasContent() bool {
	if strings.TrimSpace(r.MessageText) != "" {
		return true
	}
	return r.FileURL != nil && strings.TrimSpace(*r.FileURL) != ""
}
