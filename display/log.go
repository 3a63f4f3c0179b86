package display

import (
	"log/slog"
	"strings"

	"github.com/harveysanders/picooled/console"
)

// LogPresenter writes each presented frame to a logger. It stands in for a
// panel on hosts that have none.
type LogPresenter struct {
	logger *slog.Logger
	lines  []string
}

// NewLogPresenter returns a presenter logging frames at Info.
func NewLogPresenter(logger *slog.Logger) *LogPresenter {
	return &LogPresenter{logger: console.OrDiscard(logger)}
}

func (p *LogPresenter) Clear() { p.lines = p.lines[:0] }

func (p *LogPresenter) DrawText(x, y int16, text string) {
	p.lines = append(p.lines, text)
}

func (p *LogPresenter) Present() error {
	p.logger.Info("display:frame", slog.String("text", strings.Join(p.lines, " | ")))
	return nil
}
