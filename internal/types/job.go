package types

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

const DefaultSalaryCurrency = "INR"

var jobTypes = map[string]bool{
	JobTypeFullTime:   true,
	JobTypePartTime:   true,
	JobTypeContract:   true,
	JobTypeInternship: true,
}

func IsValidJobType(jobType string) bool {
	return jobTypes[jobType]
}

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Any status may be set from any other; there is no enforced transition
// graph. pending -> reviewed -> accepted/rejected is a client convention.
var applicationStatuses = map[string]bool{
	ApplicationStatusPending:  true,
	ApplicationStatusReviewed: true,
	ApplicationStatusAccepted: true,
	ApplicationStatusRejected: true,
}

func IsValidApplicationStatus(status string) bool {
	return applicationStatuses[status]
}
