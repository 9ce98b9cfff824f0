package types

// InterviewRole identifies the speaker of an interview message.
type InterviewRole string

const (
	RoleUser  InterviewRole = "user"
	RoleModel InterviewRole = "model"
)

// InterviewMessage is a single utterance in a mock interview.
type InterviewMessage struct {
	Role    InterviewRole `json:"role"`
	Content string        `json:"content"`
}

// InterviewSession is an ordered, append-only transcript. It is replayed
// in full as context on every turn; the gateway never retains
// conversation memory between calls.
type InterviewSession struct {
	Messages []InterviewMessage `json:"messages"`
}

// Append returns a new session with msg added. The receiver is never
// edited in place.
func (s InterviewSession) Append(msg InterviewMessage) InterviewSession {
	out := make([]InterviewMessage, len(s.Messages), len(s.Messages)+1)
	copy(out, s.Messages)
	return InterviewSession{Messages: append(out, msg)}
}

// ModelTurns counts how many questions the interviewer has already asked.
func (s InterviewSession) ModelTurns() int {
	n := 0
	for _, m := range s.Messages {
		if m.Role == RoleModel {
			n++
		}
	}
	return n
}

// Empty reports whether the interview has not started yet.
func (s InterviewSession) Empty() bool {
	return len(s.Messages) == 0
}
