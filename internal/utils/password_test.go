package utils

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if hash == "" || hash == "secret123" {
		t.Fatal("хеш пуст или совпадает с паролем")
	}

	if !CheckPasswordHash("secret123", hash) {
		t.Fatal("верный пароль не прошёл проверку")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("неверный пароль прошёл проверку")
	}
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	second, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}

	// bcrypt солит каждый хеш, совпадение значит что соль не применяется
	if first == second {
		t.Fatal("два хеша одного пароля не должны совпадать")
	}
	if !CheckPasswordHash("secret123", first) || !CheckPasswordHash("secret123", second) {
		t.Fatal("оба хеша должны проходить проверку исходным паролем")
	}
}
