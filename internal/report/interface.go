package report

import (
	"context"
	"time"

	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/recommend"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

// Payload is the full output of one diagnostic run, handed wholesale to
// each sink. Sinks own all rendering decisions.
type Payload struct {
	GeneratedAt     time.Time                         `json:"generated_at"`
	Params          recommend.Params                  `json:"params"`
	Snapshot        *snapshot.SystemSnapshot          `json:"snapshot"`
	Classification  *classify.Report                  `json:"classification"`
	Recommendations []recommend.UpgradeRecommendation `json:"recommendations"`
}

// Sink renders a diagnostic payload somewhere.
type Sink interface {
	Write(ctx context.Context, p *Payload) error
}
