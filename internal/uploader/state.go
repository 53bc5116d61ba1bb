package uploader

// State is the phase of the photo upload flow.
type State int

const (
	// StateIdle means no photos are staged.
	StateIdle State = iota
	// StateUploading means files are being sent to object storage.
	StateUploading
	// StateReady means uploaded photo URLs are staged for analysis.
	StateReady
	// StateAnalyzing means staged photos were submitted for analysis.
	StateAnalyzing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUploading:
		return "uploading"
	case StateReady:
		return "ready"
	case StateAnalyzing:
		return "analyzing"
	default:
		return "unknown"
	}
}

type eventKind int

const (
	eventUploadStarted eventKind = iota
	eventUploadFinished
	eventAnalysisStarted
	eventAnalysisFinished
	eventCancelled
)

type event struct {
	kind eventKind
	// urls carries uploaded URLs on eventUploadFinished.
	urls []string
	// failed marks eventUploadFinished with zero successes or a failed
	// eventAnalysisFinished.
	failed bool
}

// reduce is the pure transition function. Events that do not apply to the
// current state leave it unchanged.
func reduce(state State, staged []string, ev event) (State, []string) {
	switch ev.kind {
	case eventUploadStarted:
		if state != StateIdle {
			return state, staged
		}
		return StateUploading, nil

	case eventUploadFinished:
		if state != StateUploading {
			return state, staged
		}
		if ev.failed {
			return StateIdle, nil
		}
		return StateReady, ev.urls

	case eventAnalysisStarted:
		if state != StateReady {
			return state, staged
		}
		return StateAnalyzing, staged

	case eventAnalysisFinished:
		if state != StateAnalyzing {
			return state, staged
		}
		if ev.failed {
			// Keep the staged URLs so the user can retry.
			return StateReady, staged
		}
		return StateIdle, nil

	case eventCancelled:
		return StateIdle, nil

	default:
		return state, staged
	}
}
