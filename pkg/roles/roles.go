// Package roles derives the capability flags the dashboard and guard
// consult. Flags are recomputed on every call and never stored.
package roles

import "github.com/eventfold/eventfold/pkg/api"

type RoleFlags struct {
	IsAdmin         bool
	IsOrganizer     bool
	IsCourseManager bool
	IsAttendee      bool
}

const (
	tokenAdmin         = "admin"
	tokenOrganizer     = "organizer"
	tokenCourseManager = "course_manager"
	tokenAttendee      = "attendee"
)

// Resolve maps a user and an optional subscription to role flags.
//
// A present plan wins over account_type, and the account_type fallback
// applies only when no plan string exists at all: an unrecognized plan
// contributes nothing and still suppresses the fallback. Admin account
// type always contributes admin, subscription or not.
func Resolve(user *api.User, sub *api.Subscription) RoleFlags {
	set := map[string]bool{}

	hasPlan := sub != nil && sub.Plan != ""
	if hasPlan {
		switch sub.Plan {
		case api.PlanOrganization:
			set[tokenOrganizer] = true
			set[tokenCourseManager] = true
		case api.PlanOrganizer:
			set[tokenOrganizer] = true
		case api.PlanLMS:
			set[tokenCourseManager] = true
		case api.PlanAttendee:
			set[tokenAttendee] = true
		}
	} else if user != nil && user.AccountType != "" {
		set[user.AccountType] = true
	}

	if user != nil && user.AccountType == api.AccountAdmin {
		set[tokenAdmin] = true
	}

	flags := RoleFlags{
		IsAdmin:         set[tokenAdmin],
		IsOrganizer:     set[tokenAdmin] || set[tokenOrganizer],
		IsCourseManager: set[tokenAdmin] || set[tokenCourseManager],
	}
	flags.IsAttendee = set[tokenAttendee] && !flags.IsOrganizer && !flags.IsCourseManager && !flags.IsAdmin
	return flags
}
