package service

import (
	"context"
	"errors"
	log "log/slog"
	"photoshare/internal/model"
	"photoshare/internal/pkg/docstore"
	"photoshare/internal/repository"
	"sort"
	"sync"

	"github.com/goccy/go-json"
)

// Popularity weights. A subscriber signals more than a comment, a comment
// more than a reaction, a reaction more than merely owning a photo.
const (
	WeightSubscribers int64 = 10
	WeightComments    int64 = 4
	WeightReactions   int64 = 2
	WeightPhotos      int64 = 1
)

// ComputeScore folds the four engagement counts into a single score.
func ComputeScore(c *model.EngagementCounts) int64 {
	return c.SubscribersCount*WeightSubscribers +
		c.CommentsCount*WeightComments +
		c.ReactionsCount*WeightReactions +
		c.PhotosCount*WeightPhotos
}

type RankingService interface {
	CollectCounts(ctx context.Context, userID uint64) (*model.EngagementCounts, error)
	BuildFullRanking(ctx context.Context) ([]*model.RankingEntry, error)
	BuildTopN(ctx context.Context, n int) ([]*model.RankingEntry, error)

	ReadSnapshot(ctx context.Context) ([]*model.RankingEntry, error)
	WriteFull(ctx context.Context, ranking []*model.RankingEntry) error
	Reconcile(ctx context.Context) ([]*model.RankingEntry, error)
}

type rankingServiceImpl struct {
	engagementRepo repository.EngagementRepo
	store          docstore.Store
	snapshotKey    string

	// reconcileMu single-flights the snapshot read-modify-write cycle
	// within this process.
	reconcileMu sync.Mutex
}

func NewRankingService(engagementRepo repository.EngagementRepo, store docstore.Store, snapshotKey string) RankingService {
	return &rankingServiceImpl{
		engagementRepo: engagementRepo,
		store:          store,
		snapshotKey:    snapshotKey,
	}
}

func (s *rankingServiceImpl) CollectCounts(ctx context.Context, userID uint64) (*model.EngagementCounts, error) {
	return s.engagementRepo.CollectCounts(ctx, userID)
}

// BuildFullRanking recomputes the whole leaderboard from scratch: every
// known user is scored, users are sorted by descending score, and dense
// positions 1..N are assigned. Ties keep the user enumeration order.
func (s *rankingServiceImpl) BuildFullRanking(ctx context.Context) ([]*model.RankingEntry, error) {
	users, err := s.engagementRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*model.RankingEntry, 0, len(users))
	for _, user := range users {
		counts, err := s.engagementRepo.CollectCounts(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &model.RankingEntry{
			UserID:   user.ID,
			Username: user.Username,
			Score:    ComputeScore(counts),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i, entry := range entries {
		entry.Position = i + 1
	}
	return entries, nil
}

func (s *rankingServiceImpl) BuildTopN(ctx context.Context, n int) ([]*model.RankingEntry, error) {
	ranking, err := s.BuildFullRanking(ctx)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(ranking) {
		n = len(ranking)
	}
	return ranking[:n], nil
}

// ReadSnapshot loads the stored ranking. An absent or unreadable snapshot
// is treated as empty rather than surfaced.
func (s *rankingServiceImpl) ReadSnapshot(ctx context.Context) ([]*model.RankingEntry, error) {
	data, err := s.store.Get(ctx, s.snapshotKey)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return []*model.RankingEntry{}, nil
		}
		return nil, err
	}

	var ranking []*model.RankingEntry
	if err := json.Unmarshal(data, &ranking); err != nil {
		log.WarnContext(ctx, "corrupt ranking snapshot, treating as empty", "err", err)
		return []*model.RankingEntry{}, nil
	}
	return ranking, nil
}

func (s *rankingServiceImpl) WriteFull(ctx context.Context, ranking []*model.RankingEntry) error {
	data, err := json.Marshal(ranking)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, s.snapshotKey, data)
}

// Reconcile merges a freshly computed ranking into the stored snapshot:
// scores of retained users are patched in place, new users are appended
// carrying the position from the fresh computation, vanished users are
// dropped. The snapshot is rewritten only when the merge changed anything.
// Positions of untouched entries are deliberately left as stored; they
// become dense again on the next full rebuild via WriteFull.
func (s *rankingServiceImpl) Reconcile(ctx context.Context) ([]*model.RankingEntry, error) {
	s.reconcileMu.Lock()
	defer s.reconcileMu.Unlock()

	fresh, err := s.BuildFullRanking(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	freshByID := make(map[uint64]*model.RankingEntry, len(fresh))
	for _, entry := range fresh {
		freshByID[entry.UserID] = entry
	}

	merged := make([]*model.RankingEntry, 0, len(fresh))
	retained := make(map[uint64]struct{}, len(stored))
	changed := false

	for _, entry := range stored {
		freshEntry, ok := freshByID[entry.UserID]
		if !ok {
			// user no longer exists
			changed = true
			continue
		}
		retained[entry.UserID] = struct{}{}
		if entry.Score != freshEntry.Score {
			entry.Score = freshEntry.Score
			changed = true
		}
		if entry.Username != freshEntry.Username {
			entry.Username = freshEntry.Username
			changed = true
		}
		merged = append(merged, entry)
	}

	for _, entry := range fresh {
		if _, ok := retained[entry.UserID]; ok {
			continue
		}
		merged = append(merged, entry)
		changed = true
	}

	if changed {
		if err := s.WriteFull(ctx, merged); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
