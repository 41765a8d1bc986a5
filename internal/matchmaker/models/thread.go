package models

import "time"

// Author is who wrote a line in the matchmaker conversation.
type Author string

const (
	AuthorMatchmaker Author = "matchmaker"
	AuthorMe         Author = "me"
)

// Greeting opens every conversation with the assigned matchmaker.
const Greeting = "안녕하세요! 담당 주선자입니다. 취향 파악을 위해 몇 가지 여쭤볼게요."

// Entry is one line of the matchmaker conversation. IDs increase with append order.
type Entry struct {
	ID     int64
	Author Author
	Text   string
	SentAt time.Time
}
