package constants

// JobState tracks where a job is in its lifecycle.
type JobState string

// Stable values (store these exact strings in DB).
const (
	JobStateCreated   JobState = "CREATED"   // accepted, not yet picked up
	JobStateStarted   JobState = "STARTED"   // processing underway
	JobStateCompleted JobState = "COMPLETED" // terminal; end_time is set
)

// JobStatus is the outcome reported for a job. It is only meaningful once
// the job has left the CREATED state.
type JobStatus string

const (
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusSuccess    JobStatus = "SUCCESS"
	JobStatusFailed     JobStatus = "FAILED"
)

// JobStates and JobStatuses hold the allowed values for schema validation.
var (
	JobStates   = []string{string(JobStateCreated), string(JobStateStarted), string(JobStateCompleted)}
	JobStatuses = []string{string(JobStatusInProgress), string(JobStatusSuccess), string(JobStatusFailed)}
)
