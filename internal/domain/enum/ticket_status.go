package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TicketStatus represents the lifecycle state of a support ticket
type TicketStatus int

const (
	TicketStatusOpen            TicketStatus = 0
	TicketStatusInProgress      TicketStatus = 1
	TicketStatusWaitingCustomer TicketStatus = 2
	TicketStatusResolved        TicketStatus = 3
	TicketStatusClosed          TicketStatus = 4
)

var ticketStatusNames = [...]string{"open", "in_progress", "waiting_customer", "resolved", "closed"}

func (s TicketStatus) String() string {
	if int(s) < 0 || int(s) >= len(ticketStatusNames) {
		return "open"
	}
	return ticketStatusNames[s]
}

// ParseTicketStatus resolves a status name to its enum value
func ParseTicketStatus(name string) (TicketStatus, bool) {
	for i, n := range ticketStatusNames {
		if n == name {
			return TicketStatus(i), true
		}
	}
	return TicketStatusOpen, false
}

func (s TicketStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TicketStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TicketStatus(i)
		return nil
	}
	for i, n := range ticketStatusNames {
		if n == str {
			*s = TicketStatus(i)
			break
		}
	}
	return nil
}

func (s TicketStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TicketStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TicketStatusOpen
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TicketStatus(v)
	case int:
		*s = TicketStatus(v)
	}
	return nil
}

// TicketPriority represents how urgent a ticket is
type TicketPriority int

const (
	TicketPriorityLow    TicketPriority = 0
	TicketPriorityMedium TicketPriority = 1
	TicketPriorityHigh   TicketPriority = 2
	TicketPriorityUrgent TicketPriority = 3
)

var ticketPriorityNames = [...]string{"low", "medium", "high", "urgent"}

func (p TicketPriority) String() string {
	if int(p) < 0 || int(p) >= len(ticketPriorityNames) {
		return "medium"
	}
	return ticketPriorityNames[p]
}

// ParseTicketPriority resolves a priority name to its enum value
func ParseTicketPriority(name string) (TicketPriority, bool) {
	for i, n := range ticketPriorityNames {
		if n == name {
			return TicketPriority(i), true
		}
	}
	return TicketPriorityMedium, false
}

func (p TicketPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *TicketPriority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = TicketPriority(i)
		return nil
	}
	for i, n := range ticketPriorityNames {
		if n == str {
			*p = TicketPriority(i)
			break
		}
	}
	return nil
}

func (p TicketPriority) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *TicketPriority) Scan(value interface{}) error {
	if value == nil {
		*p = TicketPriorityMedium
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = TicketPriority(v)
	case int:
		*p = TicketPriority(v)
	}
	return nil
}
