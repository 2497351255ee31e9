package domain

import "time"

// ProfessionalInfo is the one-per-user professional profile. The JSON-bag
// fields mirror what the frontend edits as free-form structures.
type ProfessionalInfo struct {
	ID                string // ULID
	UserID            string
	FullName          string
	ProfessionalTitle *string
	Bio               *string
	ContactInfo       map[string]string // email, phone, location, ...
	SocialLinks       map[string]string // linkedin, github, ...
	Skills            []string
	ProfileImageURL   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Education struct {
	ID        string // ULID
	UserID    string
	School    string
	Degree    *string
	StartYear *int
	EndYear   *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Experience struct {
	ID          string // ULID
	UserID      string
	Title       string
	Company     string
	StartDate   time.Time
	EndDate     *time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Project struct {
	ID          string // ULID
	UserID      string
	Title       string
	Description *string
	ProjectURL  *string
	GithubURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Preference is the one-per-user presentation settings record.
type Preference struct {
	ID             string // ULID
	UserID         string
	PrimaryColor   *string
	SecondaryColor *string
	FontStyle      *string
	LayoutOption   *string
	Theme          string // default "light"
	Language       string // default "en"
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Todo struct {
	ID          string // ULID
	UserID      string
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
