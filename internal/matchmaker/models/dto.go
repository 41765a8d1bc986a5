package models

import (
	"time"

	"github.com/asaskevich/govalidator"

	dErrors "matchmaker/pkg/domain-errors"
)

type SendRequest struct {
	Text string `json:"text"`
}

func (r *SendRequest) Validate() error {
	if !govalidator.RuneLength(r.Text, "0", "2000") {
		return dErrors.New(dErrors.CodeInvalidInput, "message is limited to 2000 characters")
	}
	return nil
}

type EntryResponse struct {
	ID     int64     `json:"id"`
	Author Author    `json:"author"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

type ThreadResponse struct {
	Messages []EntryResponse `json:"messages"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse(e)
}

func NewThreadResponse(entries []Entry) ThreadResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewEntryResponse(e))
	}
	return ThreadResponse{Messages: out}
}
