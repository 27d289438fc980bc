package tui

import (
	"YT_watchtime/infrastructure/logger"
	"YT_watchtime/internal/core/ports"
	"fmt"
)

type logProgress struct {
	log logger.Logger
}

// NewLogProgress reports progress as log lines, for runs without a terminal.
func NewLogProgress(log logger.Logger) ports.ProgressPort {
	return &logProgress{log: log}
}

func (p *logProgress) Progress(stage ports.Stage, done, total int) {
	switch stage {
	case ports.StageQuerying:
		p.log.Info(fmt.Sprintf("Querying progress: %s - %d/%d", percent(done, total), done, total))
	case ports.StageMerging:
		if done == total {
			p.log.Info(fmt.Sprintf("Merging progress: %s - %d/%d", percent(done, total), done, total))
		}
	default:
		p.log.Debug(fmt.Sprintf("%s: %d/%d", stage, done, total))
	}
}

func percent(done, total int) string {
	if total <= 0 {
		return "100.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(done)/float64(total)*100)
}
