package leave

import (
	"time"

	"github.com/google/uuid"
)

// Request is an accepted leave submission. It is created only after the
// balance debit succeeded and is never mutated afterwards.
type Request struct {
	id         uuid.UUID
	employeeID uuid.UUID
	leaveType  Type
	dateRange  DateRange
	status     Status
	createdAt  time.Time
}

func NewRequest(employeeID uuid.UUID, leaveType Type, dateRange DateRange, now time.Time) (*Request, error) {
	if !leaveType.IsValid() {
		return nil, ErrInvalidLeaveType
	}

	return &Request{
		id:         uuid.New(),
		employeeID: employeeID,
		leaveType:  leaveType,
		dateRange:  dateRange,
		status:     StatusAccepted,
		createdAt:  now,
	}, nil
}

func (r *Request) Days() int {
	return r.dateRange.Days()
}

func (r *Request) IsAccepted() bool {
	return r.status == StatusAccepted
}

func (r *Request) ID() uuid.UUID         { return r.id }
func (r *Request) EmployeeID() uuid.UUID { return r.employeeID }
func (r *Request) LeaveType() Type       { return r.leaveType }
func (r *Request) DateRange() DateRange  { return r.dateRange }
func (r *Request) Status() Status        { return r.status }
func (r *Request) CreatedAt() time.Time  { return r.createdAt }
