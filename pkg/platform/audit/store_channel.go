package audit

import (
	"context"
	"errors"

	id "regate/pkg/domain"
)

// ChannelStore hands events to a background worker instead of persisting them
// inline. Append never blocks the request path; a full inbox drops the event
// with an error the publisher logs.
type ChannelStore struct {
	inbox chan Event
}

func NewChannelStore(buffer int) *ChannelStore {
	return &ChannelStore{inbox: make(chan Event, buffer)}
}

// Inbox is the worker side of the channel.
func (s *ChannelStore) Inbox() <-chan Event {
	return s.inbox
}

func (s *ChannelStore) Append(_ context.Context, event Event) error {
	select {
	case s.inbox <- event:
		return nil
	default:
		return errors.New("audit inbox full")
	}
}

func (s *ChannelStore) ListByOrganization(_ context.Context, _ id.OrganizationID) ([]Event, error) {
	return nil, errors.New("channel audit store is write-only")
}
