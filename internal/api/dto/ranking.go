package dto

type RankingEntryDTO struct {
	Position int    `json:"position"`
	UserID   uint64 `json:"userId"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

type EngagementCountsDTO struct {
	UserID           uint64 `json:"userId"`
	SubscribersCount int64  `json:"subscribersCount"`
	CommentsCount    int64  `json:"commentsCount"`
	ReactionsCount   int64  `json:"reactionsCount"`
	PhotosCount      int64  `json:"photosCount"`
	Score            int64  `json:"score"`
}
