package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword хеширует пароль bcrypt'ом; соль генерируется на каждый вызов,
// поэтому два хеша одного пароля никогда не совпадают.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash сверяет пароль с хешем за константное время.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
