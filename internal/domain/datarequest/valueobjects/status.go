package valueobjects

import "fmt"

// Status is the lifecycle state of a data request.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// StatusMessage is the validation message for an out-of-range status.
const StatusMessage = `Must be "open" or "closed"`

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %q", s)
	}
	return st, nil
}

// ParseFilter turns an optional list filter into a Status. Anything other than
// exactly "open" or "closed" means no filter.
func ParseFilter(s string) *Status {
	st := Status(s)
	if !st.IsValid() {
		return nil
	}
	return &st
}
