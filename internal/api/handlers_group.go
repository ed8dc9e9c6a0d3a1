package api

import "photoshare/internal/api/handler"

// HandlersGroup bundles all initialized handler instances.
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	PhotoHandler        *handler.PhotoHandler
	CommentHandler      *handler.CommentHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ReactionHandler     *handler.ReactionHandler
	RatingHandler       *handler.RatingHandler
	RankingHandler      *handler.RankingHandler
}
