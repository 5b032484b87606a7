package rest

import "github.com/gin-gonic/gin"

// Handlers groups every handler the router needs
type Handlers struct {
	Thread  *ThreadHandler
	Comment *CommentHandler
	Reply   *ReplyHandler
	Like    *LikeHandler
}

// RegisterRoutes mounts the forum API. auth guards every mutating route.
func RegisterRoutes(route gin.IRouter, h Handlers, auth gin.HandlerFunc) {
	route.GET("/threads/:threadId", h.Thread.GetThread)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", h.Thread.PostThread)
		authorized.POST("/threads/:threadId/comments", h.Comment.PostComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", h.Comment.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", h.Reply.PostReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", h.Reply.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", h.Like.PutLike)
	}
}
