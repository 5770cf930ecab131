package domain

// EventStatus tracks an event through the approval workflow.
type EventStatus string

const (
	EventInProgress EventStatus = "in-progress"
	EventReady      EventStatus = "ready"
	EventApproved   EventStatus = "approved"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventInProgress, EventReady, EventApproved:
		return true
	}
	return false
}

// eventTransitions holds the only allowed moves. Approved is terminal.
var eventTransitions = map[EventStatus]EventStatus{
	EventInProgress: EventReady,
	EventReady:      EventApproved,
}

// CanTransition reports whether an event may move from s to next.
func (s EventStatus) CanTransition(next EventStatus) bool {
	to, ok := eventTransitions[s]
	return ok && to == next
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskTodo:       {TaskInProgress},
	TaskInProgress: {TaskReview, TaskTodo},
	TaskReview:     {TaskDone},
}

// CanTransition reports whether a task may move from s to next.
func (s TaskStatus) CanTransition(next TaskStatus) bool {
	for _, to := range taskTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type ReimbursementStatus string

const (
	ReimbursementPending  ReimbursementStatus = "pending"
	ReimbursementApproved ReimbursementStatus = "approved"
	ReimbursementRejected ReimbursementStatus = "rejected"
)

func (s ReimbursementStatus) IsValid() bool {
	switch s {
	case ReimbursementPending, ReimbursementApproved, ReimbursementRejected:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationTaskAssigned NotificationType = "task-assigned"
	NotificationDueSoon      NotificationType = "due-soon"
	NotificationOverdue      NotificationType = "overdue"
	NotificationApproved     NotificationType = "approved"
	NotificationNeedsReview  NotificationType = "needs-review"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTaskAssigned, NotificationDueSoon, NotificationOverdue, NotificationApproved, NotificationNeedsReview:
		return true
	}
	return false
}

// CalendarEntryType classifies calendar entries.
type CalendarEntryType string

const (
	EntryEvent     CalendarEntryType = "event"
	EntryDeadline  CalendarEntryType = "deadline"
	EntryMeeting   CalendarEntryType = "meeting"
	EntryDrive     CalendarEntryType = "drive"
	EntryBooth     CalendarEntryType = "booth"
	EntryPost      CalendarEntryType = "post"
	EntryMilestone CalendarEntryType = "milestone"
)

func (t CalendarEntryType) IsValid() bool {
	switch t {
	case EntryEvent, EntryDeadline, EntryMeeting, EntryDrive, EntryBooth, EntryPost, EntryMilestone:
		return true
	}
	return false
}
