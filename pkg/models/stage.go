package models

// Stage is one position in the fixed ordered content pipeline.
type Stage string

const (
	StageIdea      Stage = "idea"
	StageOutlined  Stage = "outlined"
	StageDrafted   Stage = "drafted"
	StageScripted  Stage = "scripted"
	StageRecorded  Stage = "recorded"
	StageEdited    Stage = "edited"
	StageReviewed  Stage = "reviewed"
	StageScheduled Stage = "scheduled"
	StagePublished Stage = "published"
	StageAnalyzed  Stage = "analyzed"
)

// stageOrder is the canonical pipeline sequence. Advancing is strictly
// sequential by one step; there is no skipping and no rollback.
var stageOrder = []Stage{
	StageIdea,
	StageOutlined,
	StageDrafted,
	StageScripted,
	StageRecorded,
	StageEdited,
	StageReviewed,
	StageScheduled,
	StagePublished,
	StageAnalyzed,
}

// Stages returns the ordered pipeline sequence.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// NextStage returns the stage immediately following current. The second
// return is false when current is the terminal stage or unrecognized.
func NextStage(current Stage) (Stage, bool) {
	for i, s := range stageOrder {
		if s == current {
			if i == len(stageOrder)-1 {
				return "", false
			}
			return stageOrder[i+1], true
		}
	}
	return "", false
}

// ValidStage reports whether s appears in the pipeline sequence.
func ValidStage(s Stage) bool {
	for _, st := range stageOrder {
		if st == s {
			return true
		}
	}
	return false
}
