package service

import (
	"github.com/mutepass/mutepass-go/internal/generator"
	"github.com/mutepass/mutepass-go/internal/model"
)

// Length bounds applied to generation requests before they reach the generator.
const (
	DefaultLength = 12
	MinLength     = 8
	MaxLength     = 32
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *generator.Generator
}

// NewGeneratorService creates a new GeneratorService backed by the global random source.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: generator.New(nil)}
}

// Generate produces a password based on the given request.
// A zero length selects DefaultLength; any other length is clamped to [MinLength, MaxLength].
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := generator.Options{
		Length:    ClampLength(req.Length),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	password, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// ClampLength applies the default and the [MinLength, MaxLength] bounds.
func ClampLength(n int) int {
	switch {
	case n == 0:
		return DefaultLength
	case n < MinLength:
		return MinLength
	case n > MaxLength:
		return MaxLength
	default:
		return n
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
