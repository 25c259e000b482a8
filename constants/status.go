package constants

// JobStatus is the canonical status for rows in analysis_jobs.
type JobStatus string

const (
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusOCROK   JobStatus = "OCR_OK"
	JobStatusDone    JobStatus = "DONE"
	JobStatusFailed  JobStatus = "FAILED"
)

func (s JobStatus) Terminal() bool {
	return s == JobStatusDone || s == JobStatusFailed
}
