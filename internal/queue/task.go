// Package queue is the asynchronous task broker for out-of-band work. The
// request path enqueues a task and returns immediately; a separate worker
// process consumes and executes it.
package queue

// Exchange and routing configuration shared by publisher and consumer.
const (
	TaskExchange  = "cv.tasks"
	EmailTaskKey  = "send_candidate_pdf_email"
	EmailQueue    = "cv-email-tasks"
	consumerName  = "cv-worker"
	prefetchCount = 10
)

// EmailCVTask carries everything the worker needs to deliver a rendered CV.
// The PDF bytes travel base64-encoded inside the JSON body.
type EmailCVTask struct {
	TaskID    string `json:"task_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Recipient string `json:"recipient"`
	PDF       []byte `json:"pdf"`
}
