package consts

const (
	// RankingReconcileLockKey guards the snapshot read-modify-write cycle
	// across processes.
	RankingReconcileLockKey = "photoshare:ranking:reconcile:lock"

	// TokenBlacklistPrefix marks revoked JWT signatures.
	TokenBlacklistPrefix = "photoshare:token:blacklist:"
)
