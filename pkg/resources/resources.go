// Package resources binds the Kick-off SDK services to a query cache. Reads
// are cached under structured keys; mutations declare which keys they
// overwrite or invalidate once the server confirms the write.
package resources

import (
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

// Resources groups the per-entity hooks over one shared cache.
type Resources struct {
	Cache *querycache.Store

	Auth          *AuthHooks
	Users         *UserHooks
	Teams         *TeamHooks
	Roster        *RosterHooks
	Fields        *FieldHooks
	Bookings      *BookingHooks
	Matches       *MatchHooks
	Attendance    *AttendanceHooks
	Finance       *FinanceHooks
	Moderation    *ModerationHooks
	Media         *MediaHooks
	Notifications *NotificationHooks
	Search        *SearchHooks
	Community     *CommunityHooks
}

// New wires every service of client to cache.
func New(client *kickoffsdk.Client, cache *querycache.Store) *Resources {
	return &Resources{
		Cache:         cache,
		Auth:          newAuthHooks(client.Auth, cache),
		Users:         newUserHooks(client.Users, cache),
		Teams:         newTeamHooks(client.Teams, cache),
		Roster:        newRosterHooks(client.Roster, cache),
		Fields:        newFieldHooks(client.Fields, cache),
		Bookings:      newBookingHooks(client.Bookings, cache),
		Matches:       newMatchHooks(client.Matches, cache),
		Attendance:    newAttendanceHooks(client.Attendance, cache),
		Finance:       newFinanceHooks(client.Finance, cache),
		Moderation:    newModerationHooks(client.Moderation, cache),
		Media:         newMediaHooks(client.Media, cache),
		Notifications: newNotificationHooks(client.Notifications, cache),
		Search:        newSearchHooks(client.Search, cache),
		Community:     newCommunityHooks(client.Community, cache),
	}
}
