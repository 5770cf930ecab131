package memory

// Repositories bundles one repository per collection.
type Repositories struct {
	Events         *EventRepository
	Socials        *SocialEventRepository
	Calendar       *CalendarRepository
	Tasks          *TaskRepository
	Fundraising    *FundraisingRepository
	Reimbursements *ReimbursementRepository
	Notifications  *NotificationRepository
	Minutes        *MeetingMinuteRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		Events:         NewEventRepository(),
		Socials:        NewSocialEventRepository(),
		Calendar:       NewCalendarRepository(),
		Tasks:          NewTaskRepository(),
		Fundraising:    NewFundraisingRepository(),
		Reimbursements: NewReimbursementRepository(),
		Notifications:  NewNotificationRepository(),
		Minutes:        NewMeetingMinuteRepository(),
	}
}
