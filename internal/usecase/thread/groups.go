package thread

import "github.com/Guyuepp/forum-api/domain"

// replyGroups maps comment IDs to their replies
type replyGroups struct {
	buckets map[string][]domain.ReplyView
}

func newReplyGroups() *replyGroups {
	return &replyGroups{buckets: make(map[string][]domain.ReplyView)}
}

func (g *replyGroups) add(commentID string, r domain.ReplyView) {
	g.buckets[commentID] = append(g.buckets[commentID], r)
}

// get never returns nil so an unreplied comment renders as an empty list.
func (g *replyGroups) get(commentID string) []domain.ReplyView {
	if list, ok := g.buckets[commentID]; ok {
		return list
	}
	return []domain.ReplyView{}
}

