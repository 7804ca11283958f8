package services

import (
	"context"
	"fmt"
	"time"

	"eventhub/internal/domain"
)

const demoPassword = "password123"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var demoUsers = []domain.UserInput{
	{
		Username:     "alexjohnson",
		Fullname:     "Alex Johnson",
		Email:        "alex.johnson@example.com",
		Phone:        "(555) 123-4567",
		Location:     "San Francisco, California",
		About:        "Frontend developer passionate about creating intuitive user experiences. Interested in hackathons and tech conferences.",
		ProfileImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e",
		MemberSince:  day(2023, time.January, 1),
	},
	{
		Username:     "techcorp",
		Fullname:     "TechCorp",
		Email:        "info@techcorp.com",
		Phone:        "(555) 987-6543",
		Location:     "San Francisco, California",
		About:        "Leading tech company organizing innovative events and hackathons.",
		ProfileImage: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e",
		MemberSince:  day(2022, time.May, 15),
	},
}

func demoEvents() []domain.EventInput {
	prize := "$5,000"
	return []domain.EventInput{
		{
			Title:            "Tech Innovate Hackathon",
			Description:      "A 48-hour coding challenge to build innovative solutions for real-world problems. Cash prizes and networking opportunities.",
			StartDate:        day(2023, time.June, 15),
			EndDate:          day(2023, time.June, 17),
			Location:         "San Francisco, CA",
			Image:            "https://images.unsplash.com/photo-1540575467063-178a50c2df87",
			EventType:        "Hackathon",
			OrganizerID:      2,
			ParticipantLimit: 300,
			PrizePool:        &prize,
		},
		{
			Title:            "AI Summit 2023",
			Description:      "Explore the latest advancements in artificial intelligence with industry leaders. Workshops, keynotes, and networking.",
			StartDate:        day(2023, time.July, 10),
			EndDate:          day(2023, time.July, 12),
			Location:         "New York, NY",
			Image:            "https://images.unsplash.com/photo-1517048676732-d65bc937f952",
			EventType:        "Conference",
			OrganizerID:      2,
			ParticipantLimit: 1200,
		},
		{
			Title:            "Code for Good",
			Description:      "Build technology solutions for nonprofit organizations. Make a positive impact while showcasing your programming skills.",
			StartDate:        day(2023, time.August, 5),
			EndDate:          day(2023, time.August, 7),
			Location:         "Austin, TX",
			Image:            "https://images.unsplash.com/photo-1505373877841-8d25f7d46678",
			EventType:        "Hackathon",
			OrganizerID:      2,
			ParticipantLimit: 250,
		},
		{
			Title:            "Web Development Workshop",
			Description:      "Learn modern web development techniques from industry experts.",
			StartDate:        day(2023, time.May, 5),
			EndDate:          day(2023, time.May, 5),
			Location:         "Online",
			Image:            "https://images.unsplash.com/photo-1523580494863-6f3031224c94",
			EventType:        "Workshop",
			OrganizerID:      1,
			ParticipantLimit: 100,
		},
		{
			Title:            "Product Design Meetup",
			Description:      "Connect with product designers and learn about the latest design trends.",
			StartDate:        day(2023, time.September, 12),
			EndDate:          day(2023, time.September, 12),
			Location:         "Chicago, IL",
			Image:            "https://images.unsplash.com/photo-1543269865-cbf427effbad",
			EventType:        "Meetup",
			OrganizerID:      1,
			ParticipantLimit: 50,
		},
	}
}

// SeedDemoData loads the demo dataset into an empty repository: two users, five
// events, two registrations, eight certificates and three awards for the first user.
func SeedDemoData(ctx context.Context, repo domain.Repository, hasher domain.PasswordHasher) error {
	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return err
	}
	for _, in := range demoUsers {
		in.Password = hash
		if _, err := repo.CreateUser(ctx, in); err != nil {
			return fmt.Errorf("seed user %q: %w", in.Username, err)
		}
	}
	for _, in := range demoEvents() {
		if _, err := repo.CreateEvent(ctx, in); err != nil {
			return fmt.Errorf("seed event %q: %w", in.Title, err)
		}
	}
	registrations := []domain.RegistrationInput{
		{UserID: 1, EventID: 1, Status: domain.StatusConfirmed},
		{UserID: 1, EventID: 2, Status: domain.StatusPending},
	}
	for _, in := range registrations {
		if _, err := repo.RegisterForEvent(ctx, in); err != nil {
			return fmt.Errorf("seed registration: %w", err)
		}
	}
	for i := 0; i < 8; i++ {
		eventID := int64(i%3 + 1)
		in := domain.CertificateInput{UserID: 1, EventID: eventID, Name: fmt.Sprintf("Certificate for Event %d", eventID)}
		if _, err := repo.CreateCertificate(ctx, in); err != nil {
			return fmt.Errorf("seed certificate: %w", err)
		}
	}
	for i := 0; i < 3; i++ {
		eventID := int64(i%3 + 1)
		in := domain.AwardInput{UserID: 1, EventID: eventID, Name: fmt.Sprintf("Award for Event %d", eventID)}
		if _, err := repo.CreateAward(ctx, in); err != nil {
			return fmt.Errorf("seed award: %w", err)
		}
	}
	return nil
}
