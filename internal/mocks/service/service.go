// Package service contains hand-written testify mocks for the stateless
// domain service interfaces.
package service

import "github.com/stretchr/testify/mock"

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *MockPasswordHasher) ValidateStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(accountID int64) (string, error) {
	args := m.Called(accountID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Decode(token string) (int64, error) {
	args := m.Called(token)

	return args.Get(0).(int64), args.Error(1)
}
