package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"harmonia_backend/internals/constants"
	userModel "harmonia_backend/internals/features/users/user/model"
)

func testUser() *userModel.UserModel {
	return &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Ana Souza",
		Email:    "ana@x.com",
		Role:     constants.RoleStudent,
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	user := testUser()

	token, err := IssueToken("segredo-de-teste", time.Hour, user)
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := VerifyToken("segredo-de-teste", token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.UserID != user.ID.String() {
		t.Errorf("user_id = %s, esperado %s", claims.UserID, user.ID)
	}
	if claims.UserName != "Ana Souza" {
		t.Errorf("user_name = %s", claims.UserName)
	}
	if claims.Role != constants.RoleStudent {
		t.Errorf("role = %s, esperado STUDENT", claims.Role)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, _ := IssueToken("segredo-a", time.Hour, testUser())
	if _, err := VerifyToken("segredo-b", token); err == nil {
		t.Fatalf("token assinado com outro segredo deveria ser inválido")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, _ := IssueToken("segredo-de-teste", -time.Minute, testUser())
	if _, err := VerifyToken("segredo-de-teste", token); err == nil {
		t.Fatalf("token vencido deveria ser inválido")
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b.c", "   "} {
		if _, err := VerifyToken("segredo-de-teste", tok); err == nil {
			t.Errorf("token malformado %q deveria ser inválido", tok)
		}
	}
}
