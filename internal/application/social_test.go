package application

import (
	"context"
	"errors"
	"testing"

	"ircportal/internal/domain"
	"ircportal/internal/ports/input"
)

func TestUpcomingSocials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, s := range []struct {
		title string
		day   int
	}{{"Games night", 20}, {"Yesterday's lunch", 14}, {"Lunch", 15}} {
		if _, err := f.socials.CreateSocialEvent(ctx, volunteer, input.CreateSocialEventInput{Title: s.title, DateTime: *day(s.day)}); err != nil {
			t.Fatalf("CreateSocialEvent(%q) error: %v", s.title, err)
		}
	}

	upcoming, err := f.socials.GetUpcomingSocials(ctx)
	if err != nil {
		t.Fatalf("GetUpcomingSocials error: %v", err)
	}
	got := make([]string, 0, len(upcoming))
	for _, s := range upcoming {
		got = append(got, s.Title)
	}
	if want := []string{"Lunch", "Games night"}; !equal(got, want) {
		t.Errorf("GetUpcomingSocials = %v, want %v", got, want)
	}
	if upcoming[0].CreatedBy != "Yusuf Omar" {
		t.Errorf("CreatedBy = %q, want %q", upcoming[0].CreatedBy, "Yusuf Omar")
	}

	if err := f.socials.DeleteSocialEvent(ctx, upcoming[0].ID); err != nil {
		t.Fatalf("DeleteSocialEvent error: %v", err)
	}
	if all, _ := f.socials.ListSocialEvents(ctx); len(all) != 2 {
		t.Errorf("len(ListSocialEvents) = %d, want 2", len(all))
	}
	if err := f.socials.DeleteSocialEvent(ctx, upcoming[0].ID); !errors.Is(err, domain.ErrSocialEventNotFound) {
		t.Errorf("second delete error = %v, want ErrSocialEventNotFound", err)
	}
}

func TestCreateSocialRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if _, err := f.socials.CreateSocialEvent(ctx, nil, input.CreateSocialEventInput{Title: "Lunch", DateTime: *day(20)}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Errorf("no actor error = %v, want ErrNotAuthenticated", err)
	}
	if _, err := f.socials.CreateSocialEvent(ctx, volunteer, input.CreateSocialEventInput{DateTime: *day(20)}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("no title error = %v, want ErrValidation", err)
	}
}
