package analytics

// Record mirrors one line of the public_channel export. The guest count has
// been published under two names; both are accepted.
type Record struct {
	EnterpriseID                 string `json:"enterprise_id"`
	TeamID                       string `json:"team_id"`
	ChannelID                    string `json:"channel_id"`
	Name                         string `json:"name"`
	Date                         string `json:"date"`
	Visibility                   string `json:"visibility"`
	DateCreated                  int64  `json:"date_created"`
	DateLastActive               *int64 `json:"date_last_active"`
	IsSharedExternally           bool   `json:"is_shared_externally"`
	GuestMembersCount            int    `json:"guest_members_count"`
	GuestMemberCount             int    `json:"guest_member_count"`
	MembersCount                 int    `json:"members_count"`
	MessagesPostedCount          int    `json:"messages_posted_count"`
	MessagesPostedInChannelCount int    `json:"messages_posted_in_channel_count"`
	ReactionsAddedCount          int    `json:"reactions_added_count"`
}

// ErrorResponse is returned as JSON instead of the archive on failure.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
