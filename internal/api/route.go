package api

import (
	"net/http"
	"photoshare/internal/api/middleware"
	"photoshare/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedIn := authGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware())
			{
				loggedIn.POST("/logout", group.UserHandler.Logout)
				loggedIn.GET("/me", group.UserHandler.GetUserInfo)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("/:user_id", group.UserHandler.GetUserByID)
			userGroup.GET("/:user_id/photos", group.PhotoHandler.ListByOwner)
			userGroup.GET("/:user_id/subscribers", group.SubscriptionHandler.GetSubscribers)
			userGroup.GET("/:user_id/subscriptions", group.SubscriptionHandler.GetSubscriptions)
			userGroup.GET("/:user_id/engagement", group.RankingHandler.GetCounts)
		}

		photoGroup := apiGroup.Group("/photos")
		{
			photoGroup.GET("/:photo_id", group.PhotoHandler.GetPhoto)
			photoGroup.GET("/:photo_id/comments", group.CommentHandler.List)
			photoGroup.GET("/:photo_id/rating", group.RatingHandler.GetAverage)

			reactionState := photoGroup.Group("")
			reactionState.Use(middleware.AuthOptionalMiddleware())
			{
				reactionState.GET("/:photo_id/reactions", group.ReactionHandler.GetState)
			}

			authPhoto := photoGroup.Group("")
			authPhoto.Use(middleware.AuthMiddleware())
			{
				authPhoto.POST("", group.PhotoHandler.Upload)
				authPhoto.PUT("/:photo_id", group.PhotoHandler.UpdateDescription)
				authPhoto.DELETE("/:photo_id", group.PhotoHandler.Delete)
				authPhoto.POST("/:photo_id/comments", group.CommentHandler.Create)
				authPhoto.POST("/:photo_id/reactions", group.ReactionHandler.Toggle)
				authPhoto.POST("/:photo_id/rating", group.RatingHandler.Add)
				authPhoto.DELETE("/:photo_id/rating", group.RatingHandler.Delete)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.DELETE("/:comment_id", group.CommentHandler.Delete)
		}

		subscriptionGroup := apiGroup.Group("/subscriptions")
		subscriptionGroup.Use(middleware.AuthMiddleware())
		{
			subscriptionGroup.POST("/:user_id", group.SubscriptionHandler.Subscribe)
			subscriptionGroup.DELETE("/:user_id", group.SubscriptionHandler.Unsubscribe)
			subscriptionGroup.GET("/:user_id/status", group.SubscriptionHandler.IsSubscribed)
		}

		reactionGroup := apiGroup.Group("/reactions")
		{
			reactionGroup.GET("", group.ReactionHandler.ListReactions)

			adminGroup := reactionGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckAdmin())
			{
				adminGroup.POST("", group.ReactionHandler.CreateReaction)
			}
		}

		rankingGroup := apiGroup.Group("/ranking")
		{
			rankingGroup.GET("", group.RankingHandler.GetRanking)
			rankingGroup.GET("/top", group.RankingHandler.GetTop)

			adminGroup := rankingGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckAdmin())
			{
				adminGroup.POST("/refresh", group.RankingHandler.Refresh)
			}
		}
	}

	return r
}
