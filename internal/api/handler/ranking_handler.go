package handler

import (
	"photoshare/internal/api/config"
	"photoshare/internal/api/dto"
	"photoshare/internal/model"
	"photoshare/internal/pkg/response"
	"photoshare/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingSvc service.RankingService
}

func NewRankingHandler(rankingSvc service.RankingService) *RankingHandler {
	return &RankingHandler{rankingSvc: rankingSvc}
}

// GetRanking serves the durable leaderboard snapshot. An empty list means
// no snapshot has been produced yet.
func (h *RankingHandler) GetRanking(c *gin.Context) {
	entries, err := h.rankingSvc.ReadSnapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toRankingDTOs(entries))
}

// GetTop recomputes the leaderboard from live data and returns its first
// N entries.
func (h *RankingHandler) GetTop(c *gin.Context) {
	n := config.Cfg.Ranking.TopN
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		n = parsed
	}
	entries, err := h.rankingSvc.BuildTopN(c.Request.Context(), n)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toRankingDTOs(entries))
}

// GetCounts exposes a single user's raw engagement tallies and score.
func (h *RankingHandler) GetCounts(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	counts, err := h.rankingSvc.CollectCounts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.EngagementCountsDTO{
		UserID:           userID,
		SubscribersCount: counts.SubscribersCount,
		CommentsCount:    counts.CommentsCount,
		ReactionsCount:   counts.ReactionsCount,
		PhotosCount:      counts.PhotosCount,
		Score:            service.ComputeScore(counts),
	})
}

// Refresh forces a full rebuild and overwrites the snapshot, renumbering
// positions densely.
func (h *RankingHandler) Refresh(c *gin.Context) {
	entries, err := h.rankingSvc.BuildFullRanking(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = h.rankingSvc.WriteFull(c.Request.Context(), entries); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toRankingDTOs(entries))
}

func toRankingDTOs(entries []*model.RankingEntry) []*dto.RankingEntryDTO {
	out := make([]*dto.RankingEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.RankingEntryDTO{
			Position: e.Position,
			UserID:   e.UserID,
			Username: e.Username,
			Score:    e.Score,
		})
	}
	return out
}
