package constants

import (
	"path/filepath"
	"strings"
)

// Tipos de mensagem do chat. O servidor armazena o tipo declarado pelo
// cliente; a detecção por extensão é só o fallback quando ele não declara.
const (
	MessageTypeText  = "TEXT"
	MessageTypeImage = "IMAGE"
	MessageTypeVideo = "VIDEO"
	MessageTypeAudio = "AUDIO"
	MessageTypeFile  = "FILE"
)

var AllMessageTypes = []string{
	MessageTypeText, MessageTypeImage, MessageTypeVideo, MessageTypeAudio, MessageTypeFile,
}

func IsValidMessageType(t string) bool {
	for _, mt := range AllMessageTypes {
		if mt == t {
			return true
		}
	}
	return false
}

func DetectMessageTypeFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return MessageTypeImage
	case ".mp4", ".mov", ".avi", ".mkv", ".webm":
		return MessageTypeVideo
	case ".mp3", ".wav", ".ogg", ".m4a", ".aac":
		return MessageTypeAudio
	default:
		return MessageTypeFile
	}
}

// Status de presença.
const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
	AttendanceExcused = "EXCUSED"
)

// Status de pagamento. Transição normal: PENDING → PAID (sentido único).
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentOverdue = "OVERDUE"
)
