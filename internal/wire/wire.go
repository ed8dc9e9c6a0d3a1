package wire

import (
	"photoshare/internal/api"
	"photoshare/internal/api/config"
	"photoshare/internal/api/handler"
	"photoshare/internal/job"
	"photoshare/internal/pkg/consts"
	"photoshare/internal/pkg/cron"
	"photoshare/internal/pkg/docstore"
	"photoshare/internal/repository"
	"photoshare/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer bundles all top level components the process runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, store docstore.Store, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	photoRepo := repository.NewPhotoRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	subscriptionRepo := repository.NewSubscriptionRepo(db)
	reactionRepo := repository.NewReactionRepo(db)
	ratingRepo := repository.NewRatingRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)

	userService := service.NewUserService(userRepo)
	photoService := service.NewPhotoService(photoRepo)
	commentService := service.NewCommentService(commentRepo, photoRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	reactionService := service.NewReactionService(reactionRepo, photoRepo)
	ratingService := service.NewRatingService(ratingRepo, photoRepo)
	rankingService := service.NewRankingService(engagementRepo, store, consts.RankingSnapshotKey)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		PhotoHandler:        handler.NewPhotoHandler(photoService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionService),
		ReactionHandler:     handler.NewReactionHandler(reactionService),
		RatingHandler:       handler.NewRatingHandler(ratingService),
		RankingHandler:      handler.NewRankingHandler(rankingService),
	}

	router := api.SetupRouter(handlers)

	rankingRefreshJob := job.NewRankingRefreshJob(rankingService)
	cronMgr := cron.NewCronManager(rankingRefreshJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
