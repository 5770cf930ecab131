package entities

import (
	"time"

	"ircportal/internal/domain"
)

type Task struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Portfolio   domain.Portfolio    `json:"portfolio"`
	CreatedBy   string              `json:"createdBy"`
	AssignedTo  string              `json:"assignedTo"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	Category    string              `json:"category,omitempty"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Comments    []TaskComment       `json:"comments"`
	Attachments []TaskAttachment    `json:"attachments"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
}

func (t *Task) IsDone() bool {
	return t.Status == domain.TaskDone
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	t.Comments = append([]TaskComment{}, t.Comments...)
	t.Attachments = append([]TaskAttachment{}, t.Attachments...)
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	if t.CompletedAt != nil {
		c := *t.CompletedAt
		t.CompletedAt = &c
	}
	return t
}

type TaskComment struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	AuthorRole string    `json:"authorRole"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

type TaskAttachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
	URL        string    `json:"url,omitempty"`
}
