package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeGenerator_GenerateCode(t *testing.T) {
	gen := NewCodeGenerator()

	for i := 0; i < 100; i++ {
		code := gen.GenerateCode()

		assert.Len(t, code, GeneratedCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(AllowedChars, c),
				"unexpected character %q in code %s", c, code)
		}
	}
}

func TestCodeGenerator_GenerateCode_Varies(t *testing.T) {
	gen := NewCodeGenerator()

	codes := make(map[string]bool)
	for i := 0; i < 100; i++ {
		codes[gen.GenerateCode()] = true
	}

	// 62^6 вариантов: сто подряд одинаковых кодов означали бы сломанный генератор
	assert.Greater(t, len(codes), 90)
}
