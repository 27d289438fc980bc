package tui

import (
	"YT_watchtime/infrastructure/logger"
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

const maxBarWidth = 60

// RunFunc executes the pipeline, reporting through the given progress port.
type RunFunc func(ctx context.Context, progress ports.ProgressPort) (domain.Summary, error)

type progressMsg struct {
	stage ports.Stage
	done  int
	total int
}

type pipelineDoneMsg struct {
	summary domain.Summary
	err     error
}

// programReporter forwards pipeline progress into the running tea.Program.
type programReporter struct {
	program *tea.Program
}

func (r *programReporter) Progress(stage ports.Stage, done, total int) {
	if r.program == nil {
		return
	}
	r.program.Send(progressMsg{stage: stage, done: done, total: total})
}

type AppModel struct {
	run      RunFunc
	reporter ports.ProgressPort
	logger   logger.Logger

	bar   progress.Model
	stage ports.Stage
	done  int
	total int

	summary   domain.Summary
	err       error
	finished  bool
	cancelled bool

	appContext context.Context
	cancelApp  context.CancelFunc
}

func NewAppModel(ctx context.Context, run RunFunc, reporter ports.ProgressPort, log logger.Logger) *AppModel {
	// contexto cancelado no Ctrl+C
	appCtx, cancel := context.WithCancel(ctx)

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return &AppModel{
		run:        run,
		reporter:   reporter,
		logger:     log,
		bar:        bar,
		stage:      ports.StageLoading,
		appContext: appCtx,
		cancelApp:  cancel,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.run(m.appContext, m.reporter)
		return pipelineDoneMsg{summary: summary, err: err}
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.logger.Info("Ctrl+C ou Esc pressionado, cancelando execução.")
			m.cancelled = true
			m.cancelApp()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-8, 10), maxBarWidth)

	case progressMsg:
		m.stage = msg.stage
		m.done = msg.done
		m.total = msg.total

	case pipelineDoneMsg:
		m.finished = true
		m.summary = msg.summary
		m.err = msg.err
		m.cancelApp()
		return m, tea.Quit
	}

	return m, nil
}

func (m *AppModel) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m *AppModel) View() string {
	if m.finished || m.cancelled {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("YouTube watchtime"))
	b.WriteString("\n\n")

	b.WriteString(stageStyle.Render(string(m.stage)))
	if m.total > 0 {
		b.WriteString(fmt.Sprintf(" %d/%d (%s)", m.done, m.total, percent(m.done, m.total)))
	}
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.Percent()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Erro: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("(Ctrl+C ou Esc para cancelar)"))
	return docStyle.Render(b.String())
}

// RunPipeline executes run inside a Bubble Tea program that renders its progress.
func RunPipeline(ctx context.Context, run RunFunc, log logger.Logger, opts ...tea.ProgramOption) (domain.Summary, error) {
	reporter := &programReporter{}
	m := NewAppModel(ctx, run, reporter, log)
	defer m.cancelApp()

	p := tea.NewProgram(m, opts...)
	reporter.program = p

	final, err := p.Run()
	if err != nil {
		log.Error("Error running progress view", err)
		return domain.Summary{}, errors.Wrap(err, "error running progress view")
	}

	fm, ok := final.(*AppModel)
	if !ok {
		return domain.Summary{}, errors.Newf("unexpected model %T", final)
	}
	if fm.cancelled {
		return domain.Summary{}, errors.Wrap(context.Canceled, "run cancelled by user")
	}

	return fm.summary, fm.err
}
