package auth

import "golang.org/x/crypto/bcrypt"

// PasswordScheme controls how account passwords are stored and checked.
type PasswordScheme interface {
	Encode(password string) (string, error)
	Matches(stored, password string) bool
}

// PlainScheme stores passwords verbatim and compares them byte for
// byte. This is the default and matches the historical behaviour of
// the service.
type PlainScheme struct{}

func (PlainScheme) Encode(password string) (string, error) {
	return password, nil
}

func (PlainScheme) Matches(stored, password string) bool {
	return stored == password
}

// BcryptScheme hashes passwords with bcrypt. Opt in with
// PASSWORD_SCHEME=bcrypt; accounts created under one scheme do not
// verify under the other.
type BcryptScheme struct{}

func (BcryptScheme) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptScheme) Matches(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

func SchemeFromName(name string) PasswordScheme {
	if name == "bcrypt" {
		return BcryptScheme{}
	}
	return PlainScheme{}
}
