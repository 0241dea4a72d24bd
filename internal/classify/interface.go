package classify

import "github.com/haziqachik/pcdiag/internal/errors"

// UseCase is the workload profile a diagnosis is tailored to.
type UseCase string

const (
	UseCaseGaming    UseCase = "gaming"
	UseCaseRecording UseCase = "recording"
	UseCaseBoth      UseCase = "both"
)

// ParseUseCase maps a user-supplied string onto a UseCase.
func ParseUseCase(s string) (UseCase, error) {
	switch UseCase(s) {
	case UseCaseGaming, UseCaseRecording, UseCaseBoth:
		return UseCase(s), nil
	default:
		return "", errors.New().WithData(errors.ErrInvalidUseCase, s)
	}
}

func (u UseCase) IsValid() bool {
	switch u {
	case UseCaseGaming, UseCaseRecording, UseCaseBoth:
		return true
	default:
		return false
	}
}

// RequiresRecording reports whether the workload includes recording.
func (u UseCase) RequiresRecording() bool {
	return u == UseCaseRecording || u == UseCaseBoth
}

func (u UseCase) String() string {
	return string(u)
}

// Component identifies the hardware a bottleneck was detected on.
type Component string

const (
	ComponentCPU     Component = "CPU"
	ComponentRAM     Component = "RAM"
	ComponentGPU     Component = "GPU"
	ComponentStorage Component = "Storage"
)

// Severity is an ordered bottleneck severity. Higher values compare
// greater, so "escalate to highest" is a plain max.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Bottleneck is one detected issue likely to limit performance.
type Bottleneck struct {
	Component      Component `json:"component"`
	Severity       Severity  `json:"severity"`
	Issue          string    `json:"issue"`
	CurrentSpec    string    `json:"current_spec"`
	Recommendation string    `json:"recommendation"`
}

// PerformanceScores are linear heuristics in [0,100] used to rank-order
// upgrade priority. They are not benchmarks and predict nothing.
type PerformanceScores struct {
	Gaming       float64 `json:"gaming"`
	Recording    float64 `json:"recording"`
	Multitasking float64 `json:"multitasking"`
}

// Report is the classifier output for one snapshot.
type Report struct {
	Bottlenecks []Bottleneck      `json:"bottlenecks"`
	Scores      PerformanceScores `json:"scores"`
	GPUTier     Tier              `json:"gpu_tier"`
}
