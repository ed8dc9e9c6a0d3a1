package model

// EngagementCounts are the four popularity signals for one user, always
// recomputed from the source tables.
type EngagementCounts struct {
	SubscribersCount int64 `json:"subscribersCount"`
	CommentsCount    int64 `json:"commentsCount"`
	ReactionsCount   int64 `json:"reactionsCount"`
	PhotosCount      int64 `json:"photosCount"`
}

// RankedUser is the minimal user projection the ranking builder enumerates.
type RankedUser struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// RankingEntry is one row of the popularity leaderboard. It is both the
// in-memory ranking element and the snapshot document shape.
type RankingEntry struct {
	Position int    `json:"position"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}
