package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!Pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "Str0ng!Pass", hash)
	assert.True(t, CheckPasswordHash("Str0ng!Pass", hash))
	assert.False(t, CheckPasswordHash("str0ng!pass", hash))
}

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"empty", "", false},
		{"seven chars", "Ab1!cde", false},
		{"missing upper", "abcdefg1!", false},
		{"missing lower", "ABCDEFG1!", false},
		{"missing digit", "Abcdefgh!", false},
		{"missing special", "Abcdefg1", false},
		{"exactly eight, all classes", "Abcdef1!", true},
		{"longer", "Sup3r-Secret-Passw0rd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrongPassword(tt.password))
		})
	}
}
