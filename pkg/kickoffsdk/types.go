package kickoffsdk

import "time"

// ============================================================================
// Auth & Users
// ============================================================================

type Role string

const (
	RolePlayer     Role = "player"
	RoleFieldOwner Role = "field_owner"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Role     Role   `json:"role,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Credentials
	User *User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"fullName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// ============================================================================
// Teams & Roster
// ============================================================================

type Team struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	LeaderID    int64     `json:"leaderId"`
	MemberCount int       `json:"memberCount"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TeamFilter struct {
	ListParams
	Search string
	City   string
}

type TeamInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

type JoinRequest struct {
	ID        int64             `json:"id"`
	TeamID    int64             `json:"teamId"`
	User      *User             `json:"user,omitempty"`
	Message   string            `json:"message,omitempty"`
	Status    JoinRequestStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

type MemberRole string

const (
	MemberLeader  MemberRole = "leader"
	MemberCaptain MemberRole = "captain"
	MemberPlayer  MemberRole = "member"
)

type TeamMember struct {
	UserID       int64      `json:"userId"`
	User         *User      `json:"user,omitempty"`
	Role         MemberRole `json:"role"`
	Position     string     `json:"position,omitempty"`
	JerseyNumber int        `json:"jerseyNumber,omitempty"`
	JoinedAt     time.Time  `json:"joinedAt"`
}

// ============================================================================
// Fields
// ============================================================================

type Field struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city,omitempty"`
	Surface     string    `json:"surface,omitempty"`
	Size        string    `json:"size,omitempty"`
	Description string    `json:"description,omitempty"`
	PricePerHr  float64   `json:"pricePerHour"`
	Verified    bool      `json:"verified"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FieldFilter struct {
	ListParams
	Search  string
	City    string
	Surface string
}

type FieldInput struct {
	Name        string   `json:"name,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	Surface     string   `json:"surface,omitempty"`
	Size        string   `json:"size,omitempty"`
	Description string   `json:"description,omitempty"`
	PricePerHr  *float64 `json:"pricePerHour,omitempty"`
}

type PricingRule struct {
	ID         int64   `json:"id,omitempty"`
	DayOfWeek  int     `json:"dayOfWeek"`
	StartTime  string  `json:"startTime"` // HH:MM
	EndTime    string  `json:"endTime"`
	PricePerHr float64 `json:"pricePerHour"`
}

type TimeSlot struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// ============================================================================
// Bookings
// ============================================================================

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	ID         int64         `json:"id"`
	FieldID    int64         `json:"fieldId"`
	Field      *Field        `json:"field,omitempty"`
	TeamID     int64         `json:"teamId,omitempty"`
	UserID     int64         `json:"userId"`
	StartTime  time.Time     `json:"startTime"`
	EndTime    time.Time     `json:"endTime"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	Note       string        `json:"note,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type CreateBookingRequest struct {
	FieldID   int64     `json:"fieldId"`
	TeamID    int64     `json:"teamId,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Note      string    `json:"note,omitempty"`
}

// DateRange bounds a calendar query. Dates are YYYY-MM-DD.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ============================================================================
// Matches & Attendance
// ============================================================================

type MatchStatus string

const (
	MatchOpen      MatchStatus = "open"
	MatchScheduled MatchStatus = "scheduled"
	MatchFinished  MatchStatus = "finished"
	MatchCancelled MatchStatus = "cancelled"
)

type Match struct {
	ID         int64       `json:"id"`
	HomeTeamID int64       `json:"homeTeamId"`
	HomeTeam   *Team       `json:"homeTeam,omitempty"`
	AwayTeamID int64       `json:"awayTeamId,omitempty"`
	AwayTeam   *Team       `json:"awayTeam,omitempty"`
	BookingID  int64       `json:"bookingId,omitempty"`
	FieldID    int64       `json:"fieldId,omitempty"`
	StartTime  time.Time   `json:"startTime"`
	Status     MatchStatus `json:"status"`
	Note       string      `json:"note,omitempty"`
}

type MatchFilter struct {
	ListParams
	TeamID int64
	Status MatchStatus
}

type CreateMatchRequest struct {
	HomeTeamID int64     `json:"homeTeamId"`
	BookingID  int64     `json:"bookingId,omitempty"`
	FieldID    int64     `json:"fieldId,omitempty"`
	StartTime  time.Time `json:"startTime"`
	Note       string    `json:"note,omitempty"`
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

type MatchInvitation struct {
	ID        int64            `json:"id"`
	MatchID   int64            `json:"matchId"`
	Match     *Match           `json:"match,omitempty"`
	TeamID    int64            `json:"teamId"`
	Status    InvitationStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

type MatchResult struct {
	MatchID   int64     `json:"matchId"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type RecordResultRequest struct {
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Notes     string `json:"notes,omitempty"`
}

type AttendanceStatus string

const (
	AttendanceGoing    AttendanceStatus = "going"
	AttendanceMaybe    AttendanceStatus = "maybe"
	AttendanceNotGoing AttendanceStatus = "not_going"
)

type AttendanceEntry struct {
	UserID int64            `json:"userId"`
	User   *User            `json:"user,omitempty"`
	Status AttendanceStatus `json:"status"`
}

type Attendance struct {
	MatchID int64             `json:"matchId"`
	Entries []AttendanceEntry `json:"entries"`
	Going   int               `json:"going"`
	Maybe   int               `json:"maybe"`
}

// ============================================================================
// Finance
// ============================================================================

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type FinanceSummary struct {
	TeamID       int64   `json:"teamId"`
	Balance      float64 `json:"balance"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
}

type Transaction struct {
	ID          int64           `json:"id"`
	TeamID      int64           `json:"teamId"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	MemberID    int64           `json:"memberId,omitempty"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type TransactionInput struct {
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	MemberID    int64           `json:"memberId,omitempty"`
	Date        string          `json:"date,omitempty"`
}

// ============================================================================
// Moderation
// ============================================================================

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type Report struct {
	ID         int64        `json:"id"`
	ReporterID int64        `json:"reporterId"`
	TargetType string       `json:"targetType"`
	TargetID   int64        `json:"targetId"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type CreateReportRequest struct {
	TargetType string `json:"targetType"`
	TargetID   int64  `json:"targetId"`
	Reason     string `json:"reason"`
}

type ReportAction string

const (
	ReportActionDismiss  ReportAction = "dismiss"
	ReportActionRemove   ReportAction = "remove_content"
	ReportActionWarnUser ReportAction = "warn_user"
	ReportActionBanUser  ReportAction = "ban_user"
)

type Verification struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entityType"` // team | field
	EntityID   int64     `json:"entityId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ModerationHit struct {
	Type  string `json:"type"`
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// ============================================================================
// Media, Notifications, Search, Community
// ============================================================================

type Media struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	OwnerType string    `json:"ownerType"`
	EntityID  int64     `json:"entityId"`
	MimeType  string    `json:"mimeType,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Link      string    `json:"link,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type SearchResults struct {
	Teams  []Team  `json:"teams"`
	Fields []Field `json:"fields"`
	Users  []User  `json:"users"`
}

type Post struct {
	ID           int64     `json:"id"`
	Author       *User     `json:"author,omitempty"`
	Content      string    `json:"content"`
	Images       []string  `json:"images,omitempty"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	Liked        bool      `json:"liked"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreatePostRequest struct {
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Author    *User     `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
