package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) Observe(v float64) {
	m.Called(v)
}
