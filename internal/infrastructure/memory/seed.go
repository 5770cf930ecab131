package memory

import (
	"context"
	"fmt"
	"time"

	"ircportal/internal/domain"
	"ircportal/internal/domain/entities"
	"ircportal/pkg/tz"
)

// Seed fills the repositories with demo data laid out around today, the
// first instant of the current day in the club's zone.
func Seed(ctx context.Context, r *Repositories, today time.Time) error {
	day := func(n int) time.Time { return today.AddDate(0, 0, n) }
	date := func(n int) string { return day(n).Format(tz.DateLayout) }
	at := func(n, hour int) time.Time { return day(n).Add(time.Duration(hour) * time.Hour) }
	ptr := func(t time.Time) *time.Time { return &t }

	lantern := entities.Event{
		ID:          "e1",
		Title:       "Lantern Painting Event",
		Description: "Community lantern painting and cultural celebration",
		Portfolio:   domain.PortfolioEvents,
		CreatedBy:   "Fatima Al-Rashid",
		Status:      domain.EventInProgress,
		DateTime:    ptr(day(7)),
		Location:    "Main Campus Hall",
		Budget:      500,
		Checklist:   entities.DefaultChecklist(),
		CreatedAt:   day(-3),
		UpdatedAt:   day(-1),
	}
	lantern.Checklist[0].Completed = true
	lantern.Checklist[1].Completed = true

	foodBank := entities.Event{
		ID:                 "e2",
		Title:              "Halal Food Bank Drive",
		Description:        "Community food bank initiative",
		Portfolio:          domain.PortfolioCharity,
		CreatedBy:          "Amir Hassan",
		Status:             domain.EventApproved,
		DateTime:           ptr(day(3)),
		Location:           "Downtown Food Bank",
		MarketingRequested: true,
		ExternalsNeeded:    true,
		ExternalsComment:   "Need to coordinate with local food suppliers and community organizations for donations and logistics support",
		Checklist:          entities.DefaultChecklist(),
		ApprovedBy:         "Sarah Khan",
		ApprovedAt:         ptr(day(-1)),
		CreatedAt:          day(-7),
		UpdatedAt:          day(-1),
	}
	for i := 0; i < 6; i++ {
		foodBank.Checklist[i].Completed = true
	}

	for _, e := range []entities.Event{lantern, foodBank} {
		if err := r.Events.Create(ctx, &e); err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}
	}

	socials := []entities.SocialEvent{
		{ID: "s1", Title: "Team Lunch Gathering", Description: "Casual team lunch to celebrate the term", DateTime: at(5, 12), Location: "Campus Cafeteria", CreatedBy: "Aisha Patel", CreatedAt: day(-2)},
		{ID: "s2", Title: "Board Game Night", Description: "Team bonding with board games and snacks", DateTime: day(10), Location: "Student Lounge", CreatedBy: "Aisha Patel", CreatedAt: day(-1)},
	}
	for _, s := range socials {
		if err := r.Socials.Create(ctx, &s); err != nil {
			return fmt.Errorf("seed social %s: %w", s.ID, err)
		}
	}

	calendar := []entities.CalendarEvent{
		{ID: "m1", Title: "Content Deadline - Fall Campaign", Date: date(-2), Portfolio: domain.PortfolioMarketing, Type: domain.EntryDeadline, Color: "purple", Visible: true, CreatedBy: "Hassan Ibrahim"},
		{ID: "m2", Title: "Social Media Post Schedule", Date: date(0), StartTime: "10:00", EndTime: "11:00", Portfolio: domain.PortfolioMarketing, Type: domain.EntryPost, Color: "purple", Visible: true, CreatedBy: "Hassan Ibrahim"},
		{ID: "c1", EventID: "e2", Title: "Halal Food Bank Drive", Description: "On-campus charity initiative", Date: date(3), StartTime: "14:00", EndTime: "17:00", Portfolio: domain.PortfolioCharity, Type: domain.EntryDrive, Color: "red", Visible: true, CreatedBy: "Fatima Malik"},
		{ID: "c2", Title: "Donation Drive Planning", Date: date(-4), Portfolio: domain.PortfolioCharity, Type: domain.EntryMeeting, Color: "red", Visible: true, CreatedBy: "Fatima Malik"},
		{ID: "v1", Title: "Clubs Week Booth", Description: "Club booth at clubs week", Date: date(5), StartTime: "12:00", EndTime: "16:00", Portfolio: domain.PortfolioEvents, Type: domain.EntryBooth, Color: "blue", Visible: true, CreatedBy: "Sarah Ahmed"},
		{ID: "v2", Title: "Lantern Painting Event", Description: "Community event planning", Date: date(7), StartTime: "18:00", EndTime: "20:00", Portfolio: domain.PortfolioEvents, Type: domain.EntryEvent, Color: "blue", Visible: true, CreatedBy: "Sarah Ahmed"},
		{ID: "v3", Title: "Event Planning Meeting", Date: date(-7), StartTime: "15:00", EndTime: "16:00", Portfolio: domain.PortfolioEvents, Type: domain.EntryMeeting, Color: "blue", Visible: true, CreatedBy: "Sarah Ahmed"},
		{ID: "i1", Title: "Executive Team Meeting", Date: date(6), StartTime: "16:00", EndTime: "17:00", Portfolio: domain.PortfolioInternals, Type: domain.EntryMeeting, Color: "amber", Visible: true, CreatedBy: "Zainab Ali"},
		{ID: "i2", Title: "Leadership Social", Date: date(10), StartTime: "19:00", EndTime: "21:00", Portfolio: domain.PortfolioInternals, Type: domain.EntryEvent, Color: "amber", Visible: true, CreatedBy: "Zainab Ali"},
	}
	for _, c := range calendar {
		c.CreatedAt = day(-1)
		if err := r.Calendar.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed calendar entry %s: %w", c.ID, err)
		}
	}

	tasks := []entities.Task{
		{
			ID: "t1", Title: "Design Social Media Posts", Description: "Create 5 Instagram posts for the Halal Food Bank Drive",
			Portfolio: domain.PortfolioMarketing, CreatedBy: "Hassan Ibrahim", AssignedTo: "Amir Khan",
			Status: domain.TaskInProgress, Priority: domain.PriorityHigh, Category: "content", DueDate: ptr(day(2)),
			CreatedAt: day(-2), UpdatedAt: day(-1),
			Comments: []entities.TaskComment{{
				ID: "tc1", Author: "Amir Khan", AuthorRole: "Team Member",
				Text: "Started working on the designs. Will have first draft by tomorrow.", Timestamp: at(-1, 20),
			}},
		},
		{
			ID: "t2", Title: "Prepare Booth Setup List", Description: "Create a checklist of items needed for the Clubs Week booth",
			Portfolio: domain.PortfolioEvents, CreatedBy: "Sarah Ahmed", AssignedTo: "Amir Khan",
			Status: domain.TaskTodo, Priority: domain.PriorityMedium, Category: "logistics", DueDate: ptr(day(-1)),
			CreatedAt: day(-1), UpdatedAt: day(-1),
		},
		{
			ID: "t3", Title: "Send Follow-up Emails", Description: "Contact 10 local businesses for sponsorship opportunities",
			Portfolio: domain.PortfolioExternals, CreatedBy: "Layla Hassan", AssignedTo: "Amir Khan",
			Status: domain.TaskTodo, Priority: domain.PriorityHigh, Category: "outreach", DueDate: ptr(day(4)),
			CreatedAt: day(-3), UpdatedAt: day(-3),
		},
		{
			ID: "t4", Title: "Finalize Donation Drive Details", Description: "Coordinate with team for the upcoming donation drive",
			Portfolio: domain.PortfolioCharity, CreatedBy: "Fatima Malik", AssignedTo: "Amir Khan",
			Status: domain.TaskDone, Priority: domain.PriorityHigh, DueDate: ptr(day(-3)),
			CreatedAt: day(-5), UpdatedAt: day(-1), CompletedAt: ptr(day(-1)),
		},
	}
	for _, t := range tasks {
		if t.Comments == nil {
			t.Comments = []entities.TaskComment{}
		}
		t.Attachments = []entities.TaskAttachment{}
		if err := r.Tasks.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed task %s: %w", t.ID, err)
		}
	}

	booths := entities.FundraisingEntry{
		ID: "f1", Title: "Fundraising Booths", Amount: 350, Source: "Booth", SubmittedBy: "Finance VP",
		Date: date(-5), Notes: "Campus fundraising booths revenue", CreatedAt: day(-7),
	}
	if err := r.Fundraising.Create(ctx, &booths); err != nil {
		return fmt.Errorf("seed fundraising entry: %w", err)
	}

	printing := entities.Reimbursement{
		ID: "r1", Amount: 45.50, Description: "Printing materials for event promotion", RelatedEventID: "e1",
		SubmittedBy: "Fatima Al-Rashid", Status: domain.ReimbursementPending, CreatedAt: day(-3), UpdatedAt: day(-3),
	}
	if err := r.Reimbursements.Create(ctx, &printing); err != nil {
		return fmt.Errorf("seed reimbursement: %w", err)
	}

	for i, n := range []int{-14, -7} {
		minute := entities.MeetingMinute{
			ID:           fmt.Sprintf("mm%d", i+1),
			Date:         date(n),
			GoogleDocURL: fmt.Sprintf("https://docs.google.com/document/d/internals-%s/edit", date(n)),
			SubmittedBy:  "Internals VP",
			CreatedAt:    day(n),
		}
		if err := r.Minutes.Create(ctx, &minute); err != nil {
			return fmt.Errorf("seed meeting minute %s: %w", minute.ID, err)
		}
	}
	return nil
}
