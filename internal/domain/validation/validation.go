// Package validation contiene las reglas de validación de campos de cuenta:
// email, contraseña y login ID. Son funciones puras; la primera regla que falla
// gana, salvo la contraseña que además expone el checklist completo por regla.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Códigos de fallo de validación.
const (
	CodeOK                = ""
	CodeRequired          = "REQUIRED"
	CodeInvalidFormat     = "INVALID_FORMAT"
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeTooShort          = "TOO_SHORT"
	CodeTooLong           = "TOO_LONG"
	CodeInvalidChars      = "INVALID_CHARS"
	CodeTaken             = "TAKEN"
	CodeWeak              = "WEAK_PASSWORD"
)

// Result resultado de validar un campo.
type Result struct {
	Valid   bool
	Code    string
	Message string
}

func ok() Result                   { return Result{Valid: true} }
func fail(code, msg string) Result { return Result{Valid: false, Code: code, Message: msg} }

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	loginIDRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// Set es un conjunto case-insensitive de valores existentes (emails o login IDs).
type Set map[string]struct{}

// NewSet construye un Set normalizando a minúsculas.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[strings.ToLower(v)] = struct{}{}
	}
	return s
}

// Has verifica pertenencia case-insensitive.
func (s Set) Has(v string) bool {
	if s == nil {
		return false
	}
	_, found := s[strings.ToLower(v)]
	return found
}

// Email valida el formato local@dominio.tld y, si se pasa un conjunto de
// emails existentes (solo signup), que no esté ya registrado.
func Email(email string, existing Set) Result {
	if email == "" {
		return fail(CodeRequired, "Email is required")
	}
	if !emailRe.MatchString(email) {
		return fail(CodeInvalidFormat, "Invalid email format")
	}
	if existing.Has(email) {
		return fail(CodeAlreadyRegistered, "This email is already registered")
	}
	return ok()
}

// PasswordChecks checklist por regla para feedback en vivo.
type PasswordChecks struct {
	Length    bool `json:"length"`    // más de 8 caracteres
	Lowercase bool `json:"lowercase"` // al menos una minúscula
	Uppercase bool `json:"uppercase"` // al menos una mayúscula
	Special   bool `json:"special"`   // al menos un carácter especial del conjunto fijo
}

// All indica si las cuatro reglas se cumplen.
func (c PasswordChecks) All() bool {
	return c.Length && c.Lowercase && c.Uppercase && c.Special
}

const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// Password evalúa las cuatro reglas de forma independiente y devuelve la primera
// que falla en orden fijo (longitud, minúscula, mayúscula, especial) junto al
// checklist completo. La contraseña es válida solo si las cuatro se cumplen.
func Password(password string) (Result, PasswordChecks) {
	// La longitud cuenta caracteres, no bytes: "Ab#ñéíóô" tiene 8 caracteres.
	checks := PasswordChecks{
		Length:    utf8.RuneCountInString(password) > 8,
		Lowercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }),
		Uppercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		Special:   strings.ContainsAny(password, specialChars),
	}
	if password == "" {
		return fail(CodeRequired, "Password is required"), checks
	}
	if !checks.Length {
		return fail(CodeWeak, "Password must be more than 8 characters"), checks
	}
	if !checks.Lowercase {
		return fail(CodeWeak, "Password must contain a lowercase letter"), checks
	}
	if !checks.Uppercase {
		return fail(CodeWeak, "Password must contain an uppercase letter"), checks
	}
	if !checks.Special {
		return fail(CodeWeak, "Password must contain a special character"), checks
	}
	return ok(), checks
}

// LoginID valida longitud [6,12], charset [A-Za-z0-9_] y unicidad
// case-insensitive contra el conjunto de IDs existentes.
func LoginID(loginID string, existing Set) Result {
	if loginID == "" {
		return fail(CodeRequired, "Login ID is required")
	}
	if utf8.RuneCountInString(loginID) < 6 {
		return fail(CodeTooShort, "Login ID must be at least 6 characters")
	}
	if utf8.RuneCountInString(loginID) > 12 {
		return fail(CodeTooLong, "Login ID must not exceed 12 characters")
	}
	if !loginIDRe.MatchString(loginID) {
		return fail(CodeInvalidChars, "Login ID can only contain letters, numbers, and underscores")
	}
	if existing.Has(loginID) {
		return fail(CodeTaken, "This Login ID is already taken")
	}
	return ok()
}
