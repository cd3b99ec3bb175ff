package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocktrack-api/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Email
// ──────────────────────────────────────────────────────────────────────────────

func TestEmail_Requerido(t *testing.T) {
	res := validation.Email("", nil)
	assert.False(t, res.Valid)
	assert.Equal(t, validation.CodeRequired, res.Code)
}

func TestEmail_FormatoInvalido(t *testing.T) {
	for _, email := range []string{
		"plainaddress",
		"@no-local.com",
		"no-domain@",
		"no-tld@domain",
		"spaces in@local.com",
		"double@@at.com",
	} {
		res := validation.Email(email, nil)
		assert.False(t, res.Valid, "debe rechazar %q", email)
		assert.Equal(t, validation.CodeInvalidFormat, res.Code, "código para %q", email)
	}
}

func TestEmail_YaRegistrado_CaseInsensitive(t *testing.T) {
	existing := validation.NewSet("admin@company.com")
	res := validation.Email("Admin@Company.com", existing)
	assert.False(t, res.Valid)
	assert.Equal(t, validation.CodeAlreadyRegistered, res.Code)
}

func TestEmail_Valido(t *testing.T) {
	res := validation.Email("user@company.com", validation.NewSet("otro@company.com"))
	assert.True(t, res.Valid)
	assert.Equal(t, validation.CodeOK, res.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Password: la regla de longitud gana siempre para contraseñas cortas
// ──────────────────────────────────────────────────────────────────────────────

func TestPassword_LongitudFallaPrimero(t *testing.T) {
	// Contraseñas de 8 o menos caracteres: el primer fallo reportado es el de
	// longitud, sin importar qué otras reglas cumplan.
	for _, pw := range []string{"aB1!", "abcdefgh", "AB!xy2z9"} {
		res, checks := validation.Password(pw)
		assert.False(t, res.Valid, "debe rechazar %q", pw)
		assert.False(t, checks.Length)
		assert.Contains(t, res.Message, "more than 8 characters",
			"para %q el primer fallo debe ser la longitud", pw)
	}
}

func TestPassword_LongitudCuentaCaracteresNoBytes(t *testing.T) {
	// 8 caracteres pero 13 bytes: la regla de longitud debe fallar igual que
	// con 8 caracteres ASCII.
	res, checks := validation.Password("Ab#ñéíóô")
	assert.False(t, res.Valid)
	assert.False(t, checks.Length)
	assert.Contains(t, res.Message, "more than 8 characters")

	// 9 caracteres multibyte sí pasan la regla de longitud.
	_, checks = validation.Password("Ab#ñéíóôú")
	assert.True(t, checks.Length)
}

func TestPassword_OrdenDeReglas(t *testing.T) {
	cases := []struct {
		name    string
		pw      string
		message string
	}{
		{"sin minúscula", "ABCDEFGHI!", "lowercase"},
		{"sin mayúscula", "abcdefghi!", "uppercase"},
		{"sin especial", "abcdefghiJ", "special"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, _ := validation.Password(tc.pw)
			assert.False(t, res.Valid)
			assert.Contains(t, res.Message, tc.message)
		})
	}
}

func TestPassword_ChecklistCompleto(t *testing.T) {
	res, checks := validation.Password("Sup3rS3cret!")
	assert.True(t, res.Valid)
	assert.True(t, checks.All())
	assert.True(t, checks.Length)
	assert.True(t, checks.Lowercase)
	assert.True(t, checks.Uppercase)
	assert.True(t, checks.Special)
}

func TestPassword_Vacia(t *testing.T) {
	res, checks := validation.Password("")
	assert.False(t, res.Valid)
	assert.Equal(t, validation.CodeRequired, res.Code)
	assert.False(t, checks.All())
}

// ──────────────────────────────────────────────────────────────────────────────
// LoginID
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginID_Reglas(t *testing.T) {
	existing := validation.NewSet("admin123", "user001")

	cases := []struct {
		name string
		id   string
		code string
	}{
		{"vacío", "", validation.CodeRequired},
		{"muy corto", "abc12", validation.CodeTooShort},
		// 5 caracteres aunque 6 bytes: la longitud se mide en caracteres.
		{"muy corto multibyte", "ñandu", validation.CodeTooShort},
		{"muy largo", "abcdefghij123", validation.CodeTooLong},
		{"caracteres inválidos", "user-01!", validation.CodeInvalidChars},
		{"ya en uso", "ADMIN123", validation.CodeTaken},
		{"válido", "nuevo_01", validation.CodeOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := validation.LoginID(tc.id, existing)
			assert.Equal(t, tc.code, res.Code)
			assert.Equal(t, tc.code == validation.CodeOK, res.Valid)
		})
	}
}
