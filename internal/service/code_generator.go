package service

import "math/rand"

const (
	// GeneratedCodeLength длина автоматически сгенерированного кода
	GeneratedCodeLength = 6
	// AllowedChars алфавит генерируемых кодов
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator генерирует случайные короткие коды.
// Уникальность не гарантируется — коллизии разрешает уникальный индекс
// хранилища и цикл повторных попыток в LinkService.
type CodeGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// GenerateCode генерирует случайный код из GeneratedCodeLength символов
func (g *CodeGenerator) GenerateCode() string {
	result := make([]byte, GeneratedCodeLength)

	for i := range result {
		result[i] = AllowedChars[rand.Intn(len(AllowedChars))]
	}

	return string(result)
}
