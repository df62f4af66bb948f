package letter

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SonyFebri/hris-backend/internal/domain/approval"
	"github.com/SonyFebri/hris-backend/internal/domain/employee"
	"github.com/SonyFebri/hris-backend/internal/domain/letter"
)

const (
	testFormatID   = "5a7b9c11-2d3e-4f5a-8b9c-3d4e5f6a7b8c"
	testEmployeeID = "9c1d2e33-4f5a-4b6c-8d9e-5f6a7b8c9d0e"
)

func claimsContext(t *testing.T, companyID, employeeID string, isAdmin bool) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id":    "user-1",
		"company_id": companyID,
		"is_admin":   isAdmin,
		"type":       "access",
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeLetterRepo struct {
	letter.Repository

	stored    letter.Letter
	created   *letter.Letter
	updatedTo *approval.Status
}

func (f *fakeLetterRepo) Create(ctx context.Context, newLetter letter.Letter) (letter.Letter, error) {
	newLetter.ID = "letter-1"
	f.created = &newLetter
	return newLetter, nil
}

func (f *fakeLetterRepo) GetByID(ctx context.Context, id, companyID string) (letter.Letter, error) {
	found := f.stored
	if f.updatedTo != nil {
		found.Approval = *f.updatedTo
	}
	return found, nil
}

func (f *fakeLetterRepo) UpdateApproval(ctx context.Context, id, companyID string, to approval.Status) error {
	f.updatedTo = &to
	return nil
}

func (f *fakeLetterRepo) SetFileURL(ctx context.Context, id, companyID, fileURL string) error {
	f.stored.FileURL = &fileURL
	return nil
}

type fakeFileService struct {
	uploadedTo string
}

func (f *fakeFileService) Upload(ctx context.Context, file io.Reader, dir, filename, contentType string) (string, error) {
	f.uploadedTo = dir + "/" + filename
	return "http://localhost/uploads/" + f.uploadedTo, nil
}

func (f *fakeFileService) Delete(ctx context.Context, path string) error { return nil }

type fakeFormatRepo struct {
	letter.FormatRepository

	letterCount int
	deleted     bool
}

func (f *fakeFormatRepo) GetByID(ctx context.Context, id, companyID string) (letter.Format, error) {
	return letter.Format{ID: id, CompanyID: companyID, Name: "Reference Letter", Status: 1}, nil
}

func (f *fakeFormatRepo) CountLetters(ctx context.Context, formatID string) (int, error) {
	return f.letterCount, nil
}

func (f *fakeFormatRepo) SoftDelete(ctx context.Context, id, companyID string) error {
	f.deleted = true
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
}

func (f *fakeEmployeeRepo) GetActiveByID(ctx context.Context, id, companyID string) (employee.Employee, error) {
	return employee.Employee{ID: id, CompanyID: companyID}, nil
}

func newServiceUnderTest(letterRepo *fakeLetterRepo, formatRepo *fakeFormatRepo) letter.LetterService {
	return NewLetterService(letterRepo, formatRepo, &fakeEmployeeRepo{}, nil)
}

func validCreateRequest() letter.CreateLetterRequest {
	return letter.CreateLetterRequest{
		FormatID:   testFormatID,
		EmployeeID: testEmployeeID,
		Name:       "Employment Reference",
	}
}

func TestCreateLetter_EmployeeFilingWaitsForApproval(t *testing.T) {
	letterRepo := &fakeLetterRepo{}
	svc := newServiceUnderTest(letterRepo, &fakeFormatRepo{})

	created, err := svc.CreateLetter(claimsContext(t, "company-1", testEmployeeID, false), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, string(approval.StatusWaiting), created.Approval)
}

func TestCreateLetter_AdminFilingLandsApproved(t *testing.T) {
	letterRepo := &fakeLetterRepo{}
	svc := newServiceUnderTest(letterRepo, &fakeFormatRepo{})

	created, err := svc.CreateLetter(claimsContext(t, "company-1", "", true), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, string(approval.StatusApproved), created.Approval)
}

func TestCreateLetter_EmployeeCannotFileForOthers(t *testing.T) {
	letterRepo := &fakeLetterRepo{}
	svc := newServiceUnderTest(letterRepo, &fakeFormatRepo{})

	_, err := svc.CreateLetter(claimsContext(t, "company-1", "someone-else", false), validCreateRequest())

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Nil(t, letterRepo.created)
}

func TestDeleteFormat_BlockedWhileLettersAttached(t *testing.T) {
	formatRepo := &fakeFormatRepo{letterCount: 2}
	svc := newServiceUnderTest(&fakeLetterRepo{}, formatRepo)

	err := svc.DeleteFormat(claimsContext(t, "company-1", "", true), testFormatID)

	assert.ErrorIs(t, err, letter.ErrFormatInUse)
	assert.False(t, formatRepo.deleted)
}

func TestDeleteFormat_UnusedFormatRemoved(t *testing.T) {
	formatRepo := &fakeFormatRepo{}
	svc := newServiceUnderTest(&fakeLetterRepo{}, formatRepo)

	err := svc.DeleteFormat(claimsContext(t, "company-1", "", true), testFormatID)

	assert.NoError(t, err)
	assert.True(t, formatRepo.deleted)
}

func TestRespond_RejectsPendingLetter(t *testing.T) {
	letterRepo := &fakeLetterRepo{stored: letter.Letter{ID: "letter-1", Approval: approval.StatusWaiting}}
	svc := newServiceUnderTest(letterRepo, &fakeFormatRepo{})

	decided, err := svc.Respond(claimsContext(t, "company-1", "", true), "letter-1", letter.RespondLetterRequest{Decision: "Reject"})

	require.NoError(t, err)
	assert.Equal(t, string(approval.StatusRejected), decided.Approval)
}

func TestRespond_AlreadyDecided(t *testing.T) {
	letterRepo := &fakeLetterRepo{stored: letter.Letter{ID: "letter-1", Approval: approval.StatusRejected}}
	svc := newServiceUnderTest(letterRepo, &fakeFormatRepo{})

	_, err := svc.Respond(claimsContext(t, "company-1", "", true), "letter-1", letter.RespondLetterRequest{Decision: "Approve"})

	assert.ErrorIs(t, err, approval.ErrNotPending)
	assert.Nil(t, letterRepo.updatedTo)
}

func TestUploadFile_AttachesDocumentToOwnLetter(t *testing.T) {
	letterRepo := &fakeLetterRepo{stored: letter.Letter{ID: "letter-1", EmployeeID: testEmployeeID, Approval: approval.StatusWaiting}}
	fileSvc := &fakeFileService{}
	svc := NewLetterService(letterRepo, &fakeFormatRepo{}, &fakeEmployeeRepo{}, fileSvc)

	updated, err := svc.UploadFile(claimsContext(t, "company-1", testEmployeeID, false), "letter-1", strings.NewReader("doc"), "note.pdf", "application/pdf")

	require.NoError(t, err)
	require.NotNil(t, updated.FileURL)
	assert.Equal(t, "http://localhost/uploads/letters/note.pdf", *updated.FileURL)
	assert.Equal(t, "letters/note.pdf", fileSvc.uploadedTo)
}

func TestUploadFile_EmployeeCannotAttachToOthers(t *testing.T) {
	letterRepo := &fakeLetterRepo{stored: letter.Letter{ID: "letter-1", EmployeeID: "someone-else", Approval: approval.StatusWaiting}}
	fileSvc := &fakeFileService{}
	svc := NewLetterService(letterRepo, &fakeFormatRepo{}, &fakeEmployeeRepo{}, fileSvc)

	_, err := svc.UploadFile(claimsContext(t, "company-1", testEmployeeID, false), "letter-1", strings.NewReader("doc"), "note.pdf", "application/pdf")

	assert.ErrorIs(t, err, letter.ErrLetterNotFound)
	assert.Empty(t, fileSvc.uploadedTo)
}

func TestGetLetter_EmployeeCannotReadOthers(t *testing.T) {
	letterRepo := &fakeLetterRepo{stored: letter.Letter{ID: "letter-1", EmployeeID: "someone-else"}}
	svc := newServiceUnderTest(letterRepo, &fakeFormatRepo{})

	_, err := svc.GetLetter(claimsContext(t, "company-1", testEmployeeID, false), "letter-1")

	assert.ErrorIs(t, err, letter.ErrLetterNotFound)
}
