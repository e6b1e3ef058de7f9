package controller

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"harmonia_backend/internals/configs"
	helper "harmonia_backend/internals/helpers"
)

// Limite de anexo. Também é o BodyLimit do Fiber no main — requisição
// acima disso nem chega aqui.
const MaxAttachmentSize = 100 * 1024 * 1024

type AttachmentController struct {
	Config *configs.Config
}

func New(cfg *configs.Config) *AttachmentController {
	return &AttachmentController{Config: cfg}
}

// POST /api/chat/upload — campo multipart "file". Qualquer content-type é
// aceito (os MIME types de mobile variam demais para validar aqui); o
// servidor só grava os bytes e devolve o caminho relativo. O vínculo com
// a mensagem acontece depois, numa chamada separada do cliente.
func (ac *AttachmentController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo ausente no campo 'file'.")
	}
	if fileHeader.Size > MaxAttachmentSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo excede o limite de 100 MB.")
	}

	if err := os.MkdirAll(ac.Config.UploadDir, 0o755); err != nil {
		log.Printf("[ERROR] upload dir: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao preparar o armazenamento.")
	}

	storedName := StoredName(fileHeader.Filename)
	if err := c.SaveFile(fileHeader, filepath.Join(ac.Config.UploadDir, storedName)); err != nil {
		log.Printf("[ERROR] save upload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao gravar o arquivo.")
	}

	return helper.JsonOK(c, "Upload concluído.", fiber.Map{
		"fileUrl":  "/uploads/" + storedName,
		"fileName": NormalizeFilename(fileHeader.Filename),
		"fileSize": fileHeader.Size,
	})
}
