package terminal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a single-line progress bar on stderr. It stays silent
// when stderr is not a terminal. Advance is safe to call from concurrent
// download jobs.
type ProgressBar struct {
	mu              sync.Mutex
	enabled         bool
	total           int
	current         int
	lastRenderWidth int
	bar             progress.Model
}

// NewProgressBar creates a new progress bar sized to the terminal
func NewProgressBar() *ProgressBar {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 36

	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 0 {
		width := cols - 40
		if width < 16 {
			width = 16
		}
		if width > 64 {
			width = 64
		}
		bar.Width = width
	}

	return &ProgressBar{
		enabled: isTerminal(os.Stderr),
		bar:     bar,
	}
}

func (p *ProgressBar) Begin(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total <= 0 {
		total = 1
	}
	p.total = total
	p.current = 0
}

func (p *ProgressBar) Advance(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	p.current++
	if p.current > p.total {
		p.current = p.total
	}
	p.render(label)
}

func (p *ProgressBar) End(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	p.current = p.total
	p.render(label)
	fmt.Fprint(os.Stderr, "\n")
	p.lastRenderWidth = 0
}

func (p *ProgressBar) render(label string) {
	if p.total == 0 {
		return
	}
	percent := float64(p.current) / float64(p.total)
	if percent > 1 {
		percent = 1
	}
	line := fmt.Sprintf("%s %3.0f%% %d/%d %s", p.bar.ViewAs(percent), percent*100, p.current, p.total, strings.TrimSpace(label))
	pad, width := padToWidth(p.lastRenderWidth, line)
	fmt.Fprintf(os.Stderr, "\r%s%s", line, pad)
	p.lastRenderWidth = width
}

// padToWidth returns the spaces needed to blank out the tail of the
// previous render, plus the line's printed width. The bar view carries ANSI
// color sequences, so byte length overstates how many cells it occupies.
func padToWidth(prevWidth int, line string) (string, int) {
	width := lipgloss.Width(line)
	if prevWidth <= width {
		return "", width
	}
	return strings.Repeat(" ", prevWidth-width), width
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
