package api

import "time"

// Page is the envelope every list endpoint of the platform returns.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type User struct {
	UUID        string `json:"uuid"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountType string `json:"account_type"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

const (
	AccountAdmin     = "admin"
	AccountOrganizer = "organizer"
	AccountAttendee  = "attendee"
)

type Subscription struct {
	UUID               string     `json:"uuid"`
	Plan               string     `json:"plan"`
	Status             string     `json:"status"`
	Seats              int        `json:"seats"`
	SeatsUsed          int        `json:"seats_used"`
	CurrentPeriodStart *time.Time `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end"`
}

const (
	PlanOrganization = "organization"
	PlanOrganizer    = "organizer"
	PlanLMS          = "lms"
	PlanAttendee     = "attendee"
)

type Organization struct {
	UUID         string        `json:"uuid"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description,omitempty"`
	Website      string        `json:"website,omitempty"`
	LogoURL      string        `json:"logo_url,omitempty"`
	Subscription *Subscription `json:"subscription"`
	MemberCount  int           `json:"member_count"`
	CreatedAt    string        `json:"created_at,omitempty"`
}

type OrganizationMember struct {
	UUID     string `json:"uuid"`
	UserUUID string `json:"user_uuid"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at,omitempty"`
}

const (
	MemberOwner   = "owner"
	MemberAdmin   = "admin"
	MemberManager = "manager"
	MemberMember  = "member"
)

type Event struct {
	UUID             string     `json:"uuid"`
	OrganizationUUID string     `json:"organization_uuid"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug,omitempty"`
	Description      string     `json:"description,omitempty"`
	Location         string     `json:"location,omitempty"`
	StartsAt         *time.Time `json:"starts_at"`
	EndsAt           *time.Time `json:"ends_at"`
	Capacity         int        `json:"capacity"`
	IsPublic         bool       `json:"is_public"`
	Status           string     `json:"status,omitempty"`
	CreatedAt        string     `json:"created_at,omitempty"`
}

type ContactList struct {
	UUID             string `json:"uuid"`
	OrganizationUUID string `json:"organization_uuid"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ContactCount     int    `json:"contact_count"`
	CreatedAt        string `json:"created_at,omitempty"`
}

type Registration struct {
	UUID      string `json:"uuid"`
	EventUUID string `json:"event_uuid"`
	UserUUID  string `json:"user_uuid"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Certificate struct {
	UUID      string `json:"uuid"`
	EventUUID string `json:"event_uuid"`
	UserUUID  string `json:"user_uuid"`
	IssuedAt  string `json:"issued_at,omitempty"`
	PDFURL    string `json:"pdf_url,omitempty"`
}

// Manifest lists the routes and feature flags the current user is
// authorized for. It is issued by the platform after authentication.
type Manifest struct {
	Routes   []string        `json:"routes"`
	Features map[string]bool `json:"features"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
