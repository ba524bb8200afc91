package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventfold/eventfold/pkg/api"
)

func TestResolve_PlanTakesPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		accountType string
		plan        string
		want        RoleFlags
	}{
		{
			name:        "organization plan grants organizer and course manager",
			accountType: "attendee",
			plan:        api.PlanOrganization,
			want:        RoleFlags{IsOrganizer: true, IsCourseManager: true},
		},
		{
			name:        "organization plan ignores organizer account type",
			accountType: "organizer",
			plan:        api.PlanOrganization,
			want:        RoleFlags{IsOrganizer: true, IsCourseManager: true},
		},
		{
			name:        "organizer plan",
			accountType: "attendee",
			plan:        api.PlanOrganizer,
			want:        RoleFlags{IsOrganizer: true},
		},
		{
			name:        "lms plan",
			accountType: "attendee",
			plan:        api.PlanLMS,
			want:        RoleFlags{IsCourseManager: true},
		},
		{
			name:        "attendee plan",
			accountType: "organizer",
			plan:        api.PlanAttendee,
			want:        RoleFlags{IsAttendee: true},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Resolve(
				&api.User{AccountType: tt.accountType},
				&api.Subscription{Plan: tt.plan},
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_AccountTypeFallback(t *testing.T) {
	t.Parallel()

	got := Resolve(&api.User{AccountType: "organizer"}, nil)
	assert.Equal(t, RoleFlags{IsOrganizer: true}, got)

	got = Resolve(&api.User{AccountType: "attendee"}, nil)
	assert.Equal(t, RoleFlags{IsAttendee: true}, got)

	// a subscription without a plan string behaves like no subscription
	got = Resolve(&api.User{AccountType: "organizer"}, &api.Subscription{})
	assert.Equal(t, RoleFlags{IsOrganizer: true}, got)
}

func TestResolve_UnknownPlan(t *testing.T) {
	t.Parallel()

	// an unrecognized plan contributes nothing and still suppresses
	// the account_type fallback
	got := Resolve(&api.User{AccountType: "organizer"}, &api.Subscription{Plan: "enterprise_gold"})
	assert.Equal(t, RoleFlags{}, got)
}

func TestResolve_AdminAlwaysAdmin(t *testing.T) {
	t.Parallel()

	want := RoleFlags{IsAdmin: true, IsOrganizer: true, IsCourseManager: true}

	assert.Equal(t, want, Resolve(&api.User{AccountType: "admin"}, nil))

	// admin survives any plan
	got := Resolve(&api.User{AccountType: "admin"}, &api.Subscription{Plan: api.PlanAttendee})
	assert.True(t, got.IsAdmin)
	assert.True(t, got.IsOrganizer)
	assert.True(t, got.IsCourseManager)
	assert.False(t, got.IsAttendee)
}

func TestResolve_AbsentInputs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RoleFlags{}, Resolve(nil, nil))
	assert.Equal(t, RoleFlags{}, Resolve(&api.User{}, nil))
}

func TestResolve_Invariants(t *testing.T) {
	t.Parallel()

	accountTypes := []string{"", "admin", "organizer", "attendee", "weird"}
	plans := []string{"", api.PlanOrganization, api.PlanOrganizer, api.PlanLMS, api.PlanAttendee, "unknown"}

	for _, at := range accountTypes {
		for _, plan := range plans {
			var sub *api.Subscription
			if plan != "" {
				sub = &api.Subscription{Plan: plan}
			}
			got := Resolve(&api.User{AccountType: at}, sub)

			if got.IsAdmin {
				assert.True(t, got.IsOrganizer, "admin implies organizer (account_type=%q plan=%q)", at, plan)
				assert.True(t, got.IsCourseManager, "admin implies course manager (account_type=%q plan=%q)", at, plan)
			}
			if got.IsAttendee {
				assert.False(t, got.IsAdmin, "attendee excludes admin (account_type=%q plan=%q)", at, plan)
				assert.False(t, got.IsOrganizer, "attendee excludes organizer (account_type=%q plan=%q)", at, plan)
				assert.False(t, got.IsCourseManager, "attendee excludes course manager (account_type=%q plan=%q)", at, plan)
			}
		}
	}
}
