package consts

// RankingSnapshotKey is the well-known document key holding the last
// computed full popularity ranking.
const RankingSnapshotKey = "popularity_ranking.json"
