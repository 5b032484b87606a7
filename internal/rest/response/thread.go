package response

import "github.com/Guyuepp/forum-api/domain"

type AddedThread struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type Thread struct {
	Thread domain.DetailThread `json:"thread"`
}

type AddedComment struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReply struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}
