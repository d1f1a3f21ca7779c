package domain

// ApplicationStatus is the review workflow state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// ApplicationStatuses lists every workflow status in display order.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		ApplicationStatusPending,
		ApplicationStatusReviewing,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	}
}

// LogLevel is the severity of a stored log entry.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string { return string(l) }

func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	}
	return false
}

// SortField is a column the admin list can be ordered by.
type SortField string

const (
	SortFieldCreatedAt SortField = "createdAt"
	SortFieldName      SortField = "name"
	SortFieldEmail     SortField = "email"
	SortFieldStatus    SortField = "status"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortFieldCreatedAt, SortFieldName, SortFieldEmail, SortFieldStatus:
		return true
	}
	return false
}

// SortOrder is the direction of the primary sort key.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}
