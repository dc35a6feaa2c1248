package montage

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// stageProgress is the per-video progress bar: one tick per extracted
// thumbnail plus one for the composition step. A nil bar (progress off)
// swallows all calls.
type stageProgress struct {
	bar *progressbar.ProgressBar
}

// newStageProgress sets up the bar for one video's stages.
func (b *Builder) newStageProgress(v *Video, stages int) *stageProgress {
	if !b.cfg.ShowProgress {
		return &stageProgress{}
	}
	bar := progressbar.NewOptions(stages,
		progressbar.OptionSetDescription(v.Basename),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return &stageProgress{bar: bar}
}

func (p *stageProgress) step() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *stageProgress) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
