package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	userModel "harmonia_backend/internals/features/users/user/model"
)

// StartResetCodeCleanup varre periodicamente códigos de recuperação
// vencidos. Um código expirado já não passa na checagem de reset, então a
// varredura é só higiene da tabela.
func StartResetCodeCleanup(db *gorm.DB) {
	go func() {
		for {
			res := db.Model(&userModel.UserModel{}).
				Where("reset_code IS NOT NULL AND reset_code_expires_at < ?", time.Now()).
				Updates(map[string]interface{}{
					"reset_code":            nil,
					"reset_code_expires_at": nil,
				})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] códigos de recuperação: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d código(s) de recuperação expirado(s) removido(s)", res.RowsAffected)
			}

			time.Sleep(6 * time.Hour)
		}
	}()
}
