package form

// Status is the lifecycle of one asynchronous control action.
type Status int

const (
	Idle Status = iota
	Pending
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "idle"
}

// Task tracks a single in-flight request for one control, such as the upload
// button or the copy button. A control whose task is pending is disabled.
type Task struct {
	status Status
	err    error
}

// Begin moves the task to Pending. It returns false, leaving the task as it
// is, when a request is already pending.
func (t *Task) Begin() bool {
	if t.status == Pending {
		return false
	}
	t.status = Pending
	t.err = nil
	return true
}

func (t *Task) Succeed() {
	t.status = Succeeded
	t.err = nil
}

func (t *Task) Fail(err error) {
	t.status = Failed
	t.err = err
}

func (t *Task) Reset() {
	t.status = Idle
	t.err = nil
}

func (t *Task) Status() Status { return t.status }
func (t *Task) Pending() bool  { return t.status == Pending }

// Err is the failure of the last request, or nil.
func (t *Task) Err() error { return t.err }
