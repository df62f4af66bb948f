package checkclock

import (
	"context"
	"io"
)

type CheckClockService interface {
	// RecordEvent stores a punch or leave marker for the calling employee.
	// Clock events are classified on_time or late against the shift window
	// assigned for the event's date and land already approved; leave events
	// carry no status and wait for an admin decision.
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	GetEvent(ctx context.Context, id string) (EventResponse, error)
	ListEvents(ctx context.Context, filter ListEventsFilter) ([]EventResponse, error)

	// Respond decides a pending event. Decided events are terminal.
	Respond(ctx context.Context, id string, req RespondEventRequest) (EventResponse, error)

	// UploadProof attaches a supporting image to an existing record.
	UploadProof(ctx context.Context, id string, fileReader io.Reader, filename, contentType string) (EventResponse, error)

	DeleteEvent(ctx context.Context, id string) error
}
