// Package notice builds the Block Kit messages posted to candidate channels.
package notice

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/slack-go/slack"
)

const (
	LangJapanese = "ja"
	LangEnglish  = "en"

	noMembersText = "There are no members in this channel."
)

var templates = map[string]struct {
	header string
	body   string
}{
	LangJapanese: {
		header: "Notice",
		body:   "#%sは%d日間投稿がありません。アーカイブ対象になっています。",
	},
	LangEnglish: {
		header: "Notice",
		body:   "#%s has had no posts for %d days and is scheduled to be archived.",
	},
}

// Format returns the archive notice for a channel. Unknown languages fall
// back to Japanese.
func Format(channelName string, days int, lang string) []slack.Block {
	tpl, ok := templates[lang]
	if !ok {
		tpl = templates[LangJapanese]
	}

	return []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, tpl.header, false, false)),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf(tpl.body, channelName, days), false, false),
			nil, nil,
		),
	}
}

// Mention renders a user ID with mention syntax.
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// MentionText joins sorted mentions, one per line.
func MentionText(userIDs []string) string {
	if len(userIDs) == 0 {
		return noMembersText
	}

	mentions := lo.Map(slices.Sorted(slices.Values(userIDs)), func(id string, _ int) string {
		return Mention(id)
	})
	return strings.Join(mentions, "\n")
}

// MentionBlocks wraps MentionText in a single section block.
func MentionBlocks(userIDs []string) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, MentionText(userIDs), false, false),
			nil, nil,
		),
	}
}
