package constants

// Papéis do sistema. Conjunto fechado: qualquer escrita com papel fora
// desta lista é rejeitada tanto no controller quanto no banco (CHECK).
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
	RoleFinance = "FINANCE"
)

var AllRoles = []string{RoleStudent, RoleTeacher, RoleAdmin, RoleFinance}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
