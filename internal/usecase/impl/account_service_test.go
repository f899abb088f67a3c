package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bloom/internal/domain/entity"
	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/repository"
	mockrepo "bloom/internal/mocks/repository"
	mocksvc "bloom/internal/mocks/service"
	"bloom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountServiceForTest(
	accountRepo *mockrepo.MockAccountRepository,
	hasher *mocksvc.MockPasswordHasher,
	tokenSvc *mocksvc.MockTokenService,
) usecase.AccountUsecase {
	return NewAccountService(AccountServiceParams{
		TxManager:    &mockrepo.FakeTransactionManager{Factory: &mockrepo.FakeRepositoryFactory{Accounts: accountRepo}},
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       discardLogger(),
	})
}

func TestAccountService_Signup(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	hasher := new(mocksvc.MockPasswordHasher)
	tokenSvc := new(mocksvc.MockTokenService)
	srv := newAccountServiceForTest(accountRepo, hasher, tokenSvc)

	hasher.On("ValidateStrength", "Sup3rSecret").Return(nil)
	hasher.On("Hash", "Sup3rSecret").Return("$2a$hashed", nil)
	accountRepo.On("Create", mock.Anything, mock.MatchedBy(func(account *entity.Account) bool {
		return account.Email == "rose@example.com" && account.PasswordHash == "$2a$hashed"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Account).ID = 7
	}).Return(nil)

	output, err := srv.Signup(context.Background(), &usecase.SignupInput{
		Email:    "rose@example.com",
		FullName: "Rose Tyler",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.Account.ID)
	assert.Equal(t, "rose@example.com", output.Account.Email)
	accountRepo.AssertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestAccountService_Signup_WeakPassword(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	hasher := new(mocksvc.MockPasswordHasher)
	srv := newAccountServiceForTest(accountRepo, hasher, new(mocksvc.MockTokenService))

	hasher.On("ValidateStrength", "short").Return(domainerrors.ErrPasswordStrength)

	_, err := srv.Signup(context.Background(), &usecase.SignupInput{
		Email:    "rose@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	hasher := new(mocksvc.MockPasswordHasher)
	srv := newAccountServiceForTest(accountRepo, hasher, new(mocksvc.MockTokenService))

	hasher.On("ValidateStrength", "Sup3rSecret").Return(nil)
	hasher.On("Hash", "Sup3rSecret").Return("$2a$hashed", nil)
	accountRepo.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.ErrEmailAlreadyRegistered)

	_, err := srv.Signup(context.Background(), &usecase.SignupInput{
		Email:    "rose@example.com",
		Password: "Sup3rSecret",
	})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", appErr.ErrorCode())
}

func TestAccountService_Login(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	hasher := new(mocksvc.MockPasswordHasher)
	tokenSvc := new(mocksvc.MockTokenService)
	srv := newAccountServiceForTest(accountRepo, hasher, tokenSvc)

	stored := &entity.Account{ID: 7, Email: "rose@example.com", PasswordHash: "$2a$hashed"}
	accountRepo.On("FindByEmail", mock.Anything, "rose@example.com").Return(stored, nil)
	hasher.On("Check", "Sup3rSecret", "$2a$hashed").Return(true)
	tokenSvc.On("Issue", int64(7)).Return("signed.jwt.token", nil)

	output, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "rose@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, int64(7), output.Account.ID)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	hasher := new(mocksvc.MockPasswordHasher)
	tokenSvc := new(mocksvc.MockTokenService)
	srv := newAccountServiceForTest(accountRepo, hasher, tokenSvc)

	stored := &entity.Account{ID: 7, Email: "rose@example.com", PasswordHash: "$2a$hashed"}
	accountRepo.On("FindByEmail", mock.Anything, "rose@example.com").Return(stored, nil)
	hasher.On("Check", "wrong", "$2a$hashed").Return(false)

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "rose@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	tokenSvc.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	srv := newAccountServiceForTest(accountRepo, new(mocksvc.MockPasswordHasher), new(mocksvc.MockTokenService))

	accountRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	_, err := srv.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Unknown email and wrong password are deliberately the same error.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Profile(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	srv := newAccountServiceForTest(accountRepo, new(mocksvc.MockPasswordHasher), new(mocksvc.MockTokenService))

	stored := &entity.Account{ID: 7, Email: "rose@example.com", FullName: "Rose Tyler"}
	accountRepo.On("FindByID", mock.Anything, int64(7)).Return(stored, nil)

	account, err := srv.Profile(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Rose Tyler", account.FullName)
}

func TestAccountService_Profile_NotFound(t *testing.T) {
	accountRepo := new(mockrepo.MockAccountRepository)
	srv := newAccountServiceForTest(accountRepo, new(mocksvc.MockPasswordHasher), new(mocksvc.MockTokenService))

	accountRepo.On("FindByID", mock.Anything, int64(404)).
		Return(nil, repository.ErrAccountNotFound)

	_, err := srv.Profile(context.Background(), 404)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
