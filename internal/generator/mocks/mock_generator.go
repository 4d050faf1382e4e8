package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"flashgen/internal/generator"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, req generator.GenerateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
