package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "pending"    // created, enumeration not started
	JobStatusProcessing JobStatus = "processing" // enumeration/fan-out in progress
	JobStatusCompleted  JobStatus = "completed"  // terminal success
	JobStatusFailed     JobStatus = "failed"     // terminal failure
)

// JobStatuses holds the allowed values for the job status field.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// Terminal reports whether a job status admits no further transition.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// TaskStatus is the canonical status for rows in score_tasks.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"    // created, no stage executed
	TaskStatusDownloaded TaskStatus = "downloaded" // stage 1 completed (text extracted)
	TaskStatusScored     TaskStatus = "scored"     // stage 2 completed (attributes + score)
	TaskStatusFailed     TaskStatus = "failed"     // terminal failure, absorbing
)

// TaskStatuses holds the allowed values for the task status field.
var TaskStatuses = []string{
	string(TaskStatusPending),
	string(TaskStatusDownloaded),
	string(TaskStatusScored),
	string(TaskStatusFailed),
}

// Terminal reports whether a task status admits no further stage.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusScored || s == TaskStatusFailed
}
