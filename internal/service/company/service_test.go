package company

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SonyFebri/hris-backend/internal/domain/company"
	"github.com/SonyFebri/hris-backend/internal/domain/user"
	"github.com/SonyFebri/hris-backend/internal/pkg/database"
)

func adminContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":  userID,
		"is_admin": true,
		"type":     "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeCompanyRepo struct {
	company.CompanyRepository

	nameExists bool
	created    *company.Company
}

func (f *fakeCompanyRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return f.nameExists, nil
}

func (f *fakeCompanyRepo) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	newCompany.ID = "company-1"
	f.created = &newCompany
	return newCompany, nil
}

type fakeUserRepo struct {
	user.UserRepository

	attachedUserID    string
	attachedCompanyID string
}

func (f *fakeUserRepo) AttachCompany(ctx context.Context, id, companyID string) error {
	f.attachedUserID = id
	f.attachedCompanyID = companyID
	return nil
}

func TestGenerateCompanyCode(t *testing.T) {
	code := generateCompanyCode("Awesome Company Labs Extra")

	parts := strings.SplitN(code, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "ACL", parts[0], "only the first three words contribute initials")
	assert.Len(t, parts[1], 6)
	assert.Equal(t, strings.ToUpper(code), code)
}

func TestGenerateCompanyCode_MultibyteInitials(t *testing.T) {
	code := generateCompanyCode("Ötzi GmbH")

	assert.True(t, utf8.ValidString(code))
	assert.True(t, strings.HasPrefix(code, "ÖG-"))
}

func TestGenerateCompanyCode_Unique(t *testing.T) {
	a := generateCompanyCode("Acme")
	b := generateCompanyCode("Acme")
	assert.NotEqual(t, a, b)
}

func TestCreate_AttachesCompanyToAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	companyRepo := &fakeCompanyRepo{}
	userRepo := &fakeUserRepo{}
	svc := NewCompanyService(&database.DB{Pool: mock}, companyRepo, userRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	created, err := svc.Create(adminContext(t, "user-admin"), company.CreateCompanyRequest{Name: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, "company-1", created.ID)
	assert.Equal(t, 14, created.SubscriptionDays)
	assert.Equal(t, 20, created.MaxEmployeeCount)
	assert.True(t, strings.HasPrefix(created.Code, "AC-"))
	assert.Equal(t, "user-admin", userRepo.attachedUserID)
	assert.Equal(t, "company-1", userRepo.attachedCompanyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	companyRepo := &fakeCompanyRepo{nameExists: true}
	svc := NewCompanyService(&database.DB{Pool: mock}, companyRepo, &fakeUserRepo{})

	_, err = svc.Create(adminContext(t, "user-admin"), company.CreateCompanyRequest{Name: "Acme Corp"})

	assert.ErrorIs(t, err, company.ErrCompanyNameExists)
	assert.Nil(t, companyRepo.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}
