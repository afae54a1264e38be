package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/hanpama/pptquiz/internal/config"
	"github.com/hanpama/pptquiz/internal/deck"
	"github.com/hanpama/pptquiz/internal/quiz"
	"github.com/hanpama/pptquiz/internal/render"
)

// ErrNoSlideReader is returned before any deck is read when a configured extension has no reader.
var ErrNoSlideReader = errors.New("no slide reader available")

// SlideProvider reads the slide texts of a deck file.
type SlideProvider interface {
	Supports(ext string) bool
	Slides(path string) ([]deck.Slide, error)
}

// Summary describes a finished run.
type Summary struct {
	DecksFound int
	Results    []Result
	Quizzes    int
	Questions  int
	OutputPath string // empty when no file was written
}

// Runner extracts quizzes from every deck under the input root into one SQL script.
type Runner struct {
	cfg      *config.Config
	provider SlideProvider
	log      *zap.Logger
	out      io.Writer
	now      func() time.Time
}

// NewRunner creates a runner. Progress and the final summary are printed to out.
func NewRunner(cfg *config.Config, provider SlideProvider, log *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		cfg:      cfg,
		provider: provider,
		log:      log,
		out:      out,
		now:      time.Now,
	}
}

// Run processes all decks sequentially. Only a missing slide reader or a failure to
// write the output file is returned as an error; per-deck problems are recorded in the summary.
func (r *Runner) Run() (*Summary, error) {
	for _, ext := range r.cfg.Extensions {
		if !r.provider.Supports(ext) {
			return nil, fmt.Errorf("%w for %s files", ErrNoSlideReader, ext)
		}
	}

	fmt.Fprintln(r.out, "Bulk Quiz Extraction from PPT Files")

	paths, err := Discover(r.cfg.InputRoot, r.cfg.Extensions, r.log)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", r.cfg.InputRoot, err)
	}

	summary := &Summary{DecksFound: len(paths)}
	if len(paths) == 0 {
		fmt.Fprintf(r.out, "No deck files found in %s\n", r.cfg.InputRoot)
		return summary, nil
	}
	fmt.Fprintf(r.out, "Found %d deck files\n", len(paths))

	generated := r.now()
	var blocks bytes.Buffer
	for _, path := range paths {
		result := r.process(path)
		summary.Results = append(summary.Results, result)

		parsed, ok := result.(Parsed)
		if !ok {
			continue
		}
		if err := render.WriteQuiz(&blocks, parsed.TopicCode, parsed.Quiz, generated); err != nil {
			return nil, fmt.Errorf("failed to render quiz for %s: %w", path, err)
		}
		summary.Quizzes++
		summary.Questions += len(parsed.Quiz.Questions)
	}

	if err := render.WriteSummary(r.out, summaryRows(summary.Results)); err != nil {
		return nil, err
	}

	if summary.Quizzes == 0 {
		fmt.Fprintln(r.out, "No quizzes extracted from any deck")
		fmt.Fprintln(r.out, "Check that decks have a 'Lesson objectives review' slide")
		return summary, nil
	}

	if err := r.writeScript(summary.Quizzes, blocks.Bytes(), generated); err != nil {
		return nil, err
	}
	summary.OutputPath = r.cfg.OutputPath

	fmt.Fprintf(r.out, "Extracted %d quizzes (%d questions) from %d decks\n",
		summary.Quizzes, summary.Questions, summary.DecksFound)
	fmt.Fprintf(r.out, "Generated: %s\n", r.cfg.OutputPath)
	fmt.Fprintln(r.out, "Next steps:")
	fmt.Fprintln(r.out, "  1. Review the generated SQL file")
	fmt.Fprintf(r.out, "  2. Run %s against the database\n", r.cfg.OutputPath)
	fmt.Fprintln(r.out, "  3. Check the verification query at the end")
	return summary, nil
}

// process reads and extracts one deck. A panic in a reader is reported as ReadFailed.
func (r *Runner) process(path string) (result Result) {
	name := deck.Stem(path)
	log := r.log.With(zap.String("deck", name), zap.String("path", path))

	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("panic while reading deck: %v", p)
			log.Error("failed to read deck", zap.Error(err))
			result = ReadFailed{Path: path, Err: err}
		}
	}()

	log.Info("processing deck")

	slides, err := r.provider.Slides(path)
	if err != nil {
		log.Error("failed to read deck", zap.Error(err))
		return ReadFailed{Path: path, Err: err}
	}
	d := deck.Deck{Name: name, Path: path, Slides: slides}

	q, err := quiz.Extract(d.Name, d.Slides)
	if err != nil {
		log.Warn("skipping deck", zap.String("reason", err.Error()), zap.Int("slides", len(d.Slides)))
		return Skipped{Deck: d, Reason: err}
	}

	code := quiz.TopicCode(d.Name)
	log.Info("extracted quiz",
		zap.Int("review_slide", q.ReviewIndex+1),
		zap.Int("questions", len(q.Questions)),
		zap.String("topic_code", code),
	)
	return Parsed{Deck: d, TopicCode: code, Quiz: q}
}

func (r *Runner) writeScript(total int, blocks []byte, generated time.Time) error {
	var script bytes.Buffer
	if err := render.WriteHeader(&script, total, generated); err != nil {
		return err
	}
	script.Write(blocks)
	if err := render.WriteVerification(&script); err != nil {
		return err
	}

	if dir := filepath.Dir(r.cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(r.cfg.OutputPath, script.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.cfg.OutputPath, err)
	}
	r.log.Info("wrote SQL script", zap.String("path", r.cfg.OutputPath), zap.Int("quizzes", total))
	return nil
}

func summaryRows(results []Result) []render.SummaryRow {
	rows := make([]render.SummaryRow, 0, len(results))
	for _, res := range results {
		row := render.SummaryRow{Deck: filepath.Base(res.DeckPath())}
		switch v := res.(type) {
		case Parsed:
			row.Status = "parsed"
			row.Questions = len(v.Quiz.Questions)
			row.Detail = v.TopicCode
		case Skipped:
			row.Status = "skipped"
			row.Detail = v.Reason.Error()
		case ReadFailed:
			row.Status = "read failed"
			row.Detail = v.Err.Error()
		}
		rows = append(rows, row)
	}
	return rows
}
