package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"flashgen/internal/service"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) ProcessUpload(ctx context.Context, r io.Reader, filename string, size int64) (*service.UploadResult, error) {
	args := m.Called(ctx, r, filename, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}
