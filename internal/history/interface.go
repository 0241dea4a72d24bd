package history

import (
	"context"
	"time"
)

// Recorder persists a summary of each diagnostic run.
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
	Close() error
}

// Repository defines the interface for run-history storage
type Repository interface {
	Record(entry *Entry) error
	Close() error
}

// Entry is the stored summary of one diagnostic run. Full payloads go
// to the report sinks; history keeps only what trend queries need.
type Entry struct {
	Timestamp         time.Time
	UseCase           string
	BudgetUSD         int
	GamingScore       float64
	RecordingScore    float64
	MultitaskingScore float64
	BottleneckCount   int
	TopPriority       string
	RAMHardwareErrors int
}
