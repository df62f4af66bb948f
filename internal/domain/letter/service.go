package letter

import (
	"context"
	"io"
)

type LetterService interface {
	CreateFormat(ctx context.Context, req CreateFormatRequest) (FormatResponse, error)
	GetFormat(ctx context.Context, id string) (FormatResponse, error)
	ListFormats(ctx context.Context) ([]FormatResponse, error)
	UpdateFormat(ctx context.Context, id string, req UpdateFormatRequest) (FormatResponse, error)
	DeleteFormat(ctx context.Context, id string) error

	// CreateLetter files a letter for an employee. Letters filed by admins are
	// approved immediately; employee-filed letters start pending.
	CreateLetter(ctx context.Context, req CreateLetterRequest) (LetterResponse, error)
	GetLetter(ctx context.Context, id string) (LetterResponse, error)
	ListLetters(ctx context.Context, filter ListLettersFilter) ([]LetterResponse, error)

	// Respond decides a pending letter. Decided letters are terminal.
	Respond(ctx context.Context, id string, req RespondLetterRequest) (LetterResponse, error)

	// UploadFile stores the letter document and records its URL.
	UploadFile(ctx context.Context, id string, file io.Reader, filename, contentType string) (LetterResponse, error)

	DeleteLetter(ctx context.Context, id string) error
}
