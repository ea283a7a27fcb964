package domain

// Conversation is one entry of a conversations.list page.
type Conversation struct {
	ID       string
	Name     string
	IsMember bool
}

// ConversationPage is one page of conversations.list.
type ConversationPage struct {
	Channels   []Conversation
	NextCursor string
}
