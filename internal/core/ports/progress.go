package ports

type Stage string

const (
	StageLoading  Stage = "Loading history"
	StageQuerying Stage = "Querying"
	StageMerging  Stage = "Merging"
	StageSaving   Stage = "Saving"
)

// ProgressPort receives progress notifications from the pipeline. Implementations must not block
// for long: they are called inline by the fetch loop.
type ProgressPort interface {
	Progress(stage Stage, done, total int)
}
