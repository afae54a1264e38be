package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hanpama/pptquiz/internal/quiz"
)

const timestampLayout = "2006-01-02 15:04:05"

// Fixed quiz settings applied to every generated quiz.
const (
	passingScore     = 70
	timeLimitMinutes = 15
	questionPoints   = 1
)

// Escape doubles single quotes for use inside a SQL string literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// lineWriter writes newline-terminated lines and keeps the first error.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}

func (lw *lineWriter) linef(format string, args ...any) {
	lw.line(fmt.Sprintf(format, args...))
}

// WriteHeader writes the comment banner that opens the import script.
func WriteHeader(w io.Writer, total int, generated time.Time) error {
	lw := &lineWriter{w: w}
	lw.line("-- Bulk Quiz Import")
	lw.linef("-- Generated: %s", generated.Format(timestampLayout))
	lw.linef("-- Total quizzes: %d", total)
	lw.line("")
	lw.line("-- Note: This will create quizzes for all topics that have matching codes")
	lw.line("-- Topics without matching codes will be skipped")
	lw.line("")
	lw.line("")
	return lw.err
}

// WriteQuiz writes one transactional block creating the quiz and its questions.
// The quiz is attached to the topic whose code equals topicCode.
func WriteQuiz(w io.Writer, topicCode string, q *quiz.Quiz, generated time.Time) error {
	lw := &lineWriter{w: w}
	code := Escape(topicCode)
	name := Escape(q.DeckName)

	lw.linef("-- Quiz for: %s", q.DeckName)
	lw.linef("-- Topic code: %s", topicCode)
	lw.linef("-- Generated: %s", generated.Format(timestampLayout))
	lw.line("")
	lw.line("DO $$")
	lw.line("DECLARE")
	lw.line("  v_quiz_id UUID;")
	lw.line("BEGIN")
	lw.line("  -- Create quiz")
	lw.line("  INSERT INTO quizzes (")
	lw.line("    id, topic_id, title, description, passing_score, time_limit_minutes, published")
	lw.line("  ) VALUES (")
	lw.line("    gen_random_uuid(),")
	lw.linef("    (SELECT id FROM topics WHERE code = '%s'),", code)
	lw.linef("    '%s - Knowledge Check',", name)
	lw.linef("    'Quiz extracted from %s',", name)
	lw.linef("    %d,", passingScore)
	lw.linef("    %d,", timeLimitMinutes)
	lw.line("    true")
	lw.line("  ) RETURNING id INTO v_quiz_id;")
	lw.line("")
	lw.line("  -- Create questions")

	for i, question := range q.Questions {
		options, err := question.Options.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to encode options of question %d: %w", i+1, err)
		}

		lw.linef("  -- Question %d", i+1)
		lw.line("  INSERT INTO quiz_questions (")
		lw.line("    id, quiz_id, position, question, options, correct_answer, points")
		lw.line("  ) VALUES (")
		lw.line("    gen_random_uuid(),")
		lw.line("    v_quiz_id,")
		lw.linef("    %d,", i+1)
		lw.linef("    '%s',", Escape(question.Text))
		lw.linef("    '%s'::jsonb,", Escape(string(options)))
		lw.linef("    '%s',", Escape(question.Correct))
		lw.linef("    %d", questionPoints)
		lw.line("  );")
		lw.line("")
	}

	lw.linef("  RAISE NOTICE 'Created quiz for %s with %% questions', %d;", code, len(q.Questions))
	lw.line("END $$;")
	lw.line("")
	lw.line("")
	return lw.err
}

// WriteVerification writes the closing query that counts imported questions per topic.
// It is the last statement of the script and is not followed by a newline.
func WriteVerification(w io.Writer) error {
	_, err := io.WriteString(w, strings.Join([]string{
		"-- Verification: List all quizzes created",
		"SELECT ",
		"  t.code,",
		"  t.title,",
		"  q.title as quiz_title,",
		"  COUNT(qq.id) as question_count",
		"FROM quizzes q",
		"JOIN topics t ON q.topic_id = t.id",
		"LEFT JOIN quiz_questions qq ON qq.quiz_id = q.id",
		"GROUP BY t.code, t.title, q.title",
		"ORDER BY t.code;",
	}, "\n"))
	return err
}
