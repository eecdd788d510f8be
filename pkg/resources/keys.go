package resources

import (
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type Key = querycache.Key

// Key builders. Every key starts with its namespace segment so a mutation
// can invalidate the whole namespace, or a narrower prefix of it.
var (
	AuthKeys         authKeys
	UserKeys         userKeys
	TeamKeys         teamKeys
	RosterKeys       rosterKeys
	FieldKeys        fieldKeys
	BookingKeys      bookingKeys
	MatchKeys        matchKeys
	AttendanceKeys   attendanceKeys
	FinanceKeys      financeKeys
	ModerationKeys   moderationKeys
	MediaKeys        mediaKeys
	NotificationKeys notificationKeys
	SearchKeys       searchKeys
	CommunityKeys    communityKeys
)

type authKeys struct{}

func (authKeys) All() Key         { return Key{"auth"} }
func (authKeys) CurrentUser() Key { return Key{"auth", "me"} }

type userKeys struct{}

func (userKeys) All() Key            { return Key{"users"} }
func (userKeys) Detail(id int64) Key { return Key{"users", "detail", id} }

type teamKeys struct{}

func (teamKeys) All() Key                         { return Key{"teams"} }
func (teamKeys) Lists() Key                       { return Key{"teams", "list"} }
func (teamKeys) List(f kickoffsdk.TeamFilter) Key { return Key{"teams", "list", f} }
func (teamKeys) Detail(id int64) Key              { return Key{"teams", "detail", id} }
func (teamKeys) Mine() Key                        { return Key{"teams", "mine"} }
func (teamKeys) JoinRequests(teamID int64) Key    { return Key{"teams", "join-requests", teamID} }

type rosterKeys struct{}

func (rosterKeys) All() Key              { return Key{"roster"} }
func (rosterKeys) Team(teamID int64) Key { return Key{"roster", teamID} }

type fieldKeys struct{}

func (fieldKeys) All() Key                                 { return Key{"fields"} }
func (fieldKeys) Lists() Key                               { return Key{"fields", "list"} }
func (fieldKeys) List(f kickoffsdk.FieldFilter) Key        { return Key{"fields", "list", f} }
func (fieldKeys) Detail(id int64) Key                      { return Key{"fields", "detail", id} }
func (fieldKeys) Mine() Key                                { return Key{"fields", "mine"} }
func (fieldKeys) Pricing(id int64) Key                     { return Key{"fields", "pricing", id} }
func (fieldKeys) Availability(id int64) Key                { return Key{"fields", "availability", id} }
func (fieldKeys) AvailabilityOn(id int64, date string) Key { return Key{"fields", "availability", id, date} }

type bookingKeys struct{}

func (bookingKeys) All() Key            { return Key{"bookings"} }
func (bookingKeys) Detail(id int64) Key { return Key{"bookings", "detail", id} }
func (bookingKeys) Mine() Key           { return Key{"bookings", "mine"} }
func (bookingKeys) OwnerPending() Key   { return Key{"bookings", "owner", "pending"} }
func (bookingKeys) History(p kickoffsdk.ListParams) Key {
	return Key{"bookings", "history", p}
}
func (bookingKeys) Calendar(fieldID int64, r kickoffsdk.DateRange) Key {
	return Key{"bookings", "calendar", fieldID, r}
}

type matchKeys struct{}

func (matchKeys) All() Key                          { return Key{"matches"} }
func (matchKeys) Lists() Key                        { return Key{"matches", "list"} }
func (matchKeys) List(f kickoffsdk.MatchFilter) Key { return Key{"matches", "list", f} }
func (matchKeys) Detail(id int64) Key               { return Key{"matches", "detail", id} }
func (matchKeys) Invitations(teamID int64) Key      { return Key{"matches", "invitations", teamID} }
func (matchKeys) Result(matchID int64) Key          { return Key{"matches", "result", matchID} }

type attendanceKeys struct{}

func (attendanceKeys) All() Key                { return Key{"attendance"} }
func (attendanceKeys) Match(matchID int64) Key { return Key{"attendance", matchID} }

type financeKeys struct{}

func (financeKeys) All() Key                 { return Key{"finance"} }
func (financeKeys) Team(teamID int64) Key    { return Key{"finance", teamID} }
func (financeKeys) Summary(teamID int64) Key { return Key{"finance", teamID, "summary"} }
func (financeKeys) Transactions(teamID int64, p kickoffsdk.ListParams) Key {
	return Key{"finance", teamID, "transactions", p}
}

type moderationKeys struct{}

func (moderationKeys) All() Key     { return Key{"moderation"} }
func (moderationKeys) Reports() Key { return Key{"moderation", "reports"} }
func (moderationKeys) ReportsByStatus(s kickoffsdk.ReportStatus) Key {
	return Key{"moderation", "reports", s}
}
func (moderationKeys) Verifications() Key { return Key{"moderation", "verifications"} }
func (moderationKeys) Search(q string, p kickoffsdk.ListParams) Key {
	return Key{"moderation", "search", q, p}
}

type mediaKeys struct{}

func (mediaKeys) All() Key { return Key{"media"} }
func (mediaKeys) Owner(ownerType string, entityID int64) Key {
	return Key{"media", ownerType, entityID}
}

type notificationKeys struct{}

func (notificationKeys) All() Key         { return Key{"notifications"} }
func (notificationKeys) List() Key        { return Key{"notifications", "list"} }
func (notificationKeys) UnreadCount() Key { return Key{"notifications", "unread-count"} }

type searchKeys struct{}

func (searchKeys) All() Key { return Key{"search"} }
func (searchKeys) Global(q string, kind kickoffsdk.SearchKind) Key {
	return Key{"search", q, kind}
}

type communityKeys struct{}

func (communityKeys) All() Key                             { return Key{"community"} }
func (communityKeys) Posts() Key                           { return Key{"community", "posts"} }
func (communityKeys) PostList(p kickoffsdk.ListParams) Key { return Key{"community", "posts", "list", p} }
func (communityKeys) Post(id int64) Key                    { return Key{"community", "posts", "detail", id} }
func (communityKeys) Comments(postID int64) Key            { return Key{"community", "comments", postID} }
