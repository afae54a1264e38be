package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/pptquiz/internal/quiz"
)

var generated = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func sampleQuiz(name string, questions ...quiz.Question) *quiz.Quiz {
	return &quiz.Quiz{DeckName: name, Questions: questions}
}

func question(text, correct string, opts ...string) quiz.Question {
	var o quiz.Options
	for i := 0; i+1 < len(opts); i += 2 {
		o.Add(opts[i], opts[i+1])
	}
	return quiz.Question{Text: text, Options: o, Correct: correct}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "don''t", Escape("don't"))
	assert.Equal(t, "''''", Escape("''"))
	assert.Equal(t, `no "change"`, Escape(`no "change"`))
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, 2, generated))

	assert.Equal(t, "-- Bulk Quiz Import\n"+
		"-- Generated: 2025-03-04 05:06:07\n"+
		"-- Total quizzes: 2\n"+
		"\n"+
		"-- Note: This will create quizzes for all topics that have matching codes\n"+
		"-- Topics without matching codes will be skipped\n"+
		"\n"+
		"\n", buf.String())
}

func TestWriteQuiz(t *testing.T) {
	q := sampleQuiz("IS_Claim_01",
		question("What is X?", "B", "A", "foo", "B", "bar"),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteQuiz(&buf, "cc-01-011", q, generated))

	want := `-- Quiz for: IS_Claim_01
-- Topic code: cc-01-011
-- Generated: 2025-03-04 05:06:07

DO $$
DECLARE
  v_quiz_id UUID;
BEGIN
  -- Create quiz
  INSERT INTO quizzes (
    id, topic_id, title, description, passing_score, time_limit_minutes, published
  ) VALUES (
    gen_random_uuid(),
    (SELECT id FROM topics WHERE code = 'cc-01-011'),
    'IS_Claim_01 - Knowledge Check',
    'Quiz extracted from IS_Claim_01',
    70,
    15,
    true
  ) RETURNING id INTO v_quiz_id;

  -- Create questions
  -- Question 1
  INSERT INTO quiz_questions (
    id, quiz_id, position, question, options, correct_answer, points
  ) VALUES (
    gen_random_uuid(),
    v_quiz_id,
    1,
    'What is X?',
    '{"A": "foo", "B": "bar"}'::jsonb,
    'B',
    1
  );

  RAISE NOTICE 'Created quiz for cc-01-011 with % questions', 1;
END $$;


`
	assert.Equal(t, want, buf.String())
}

func TestWriteQuiz_EscapesQuotes(t *testing.T) {
	q := sampleQuiz("Bob's deck",
		question("Why don't we?", "A", "A", "don't", "B", `say "no"`),
		question("Second", "B", "A", "x", "B", "y"),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteQuiz(&buf, "unknown-Bob's deck", q, generated))
	out := buf.String()

	assert.Contains(t, out, "-- Quiz for: Bob's deck\n")
	assert.Contains(t, out, "code = 'unknown-Bob''s deck'")
	assert.Contains(t, out, "'Bob''s deck - Knowledge Check',")
	assert.Contains(t, out, "'Why don''t we?',")
	assert.Contains(t, out, `'{"A": "don''t", "B": "say \"no\""}'::jsonb,`)
	assert.Contains(t, out, "  -- Question 2\n")
	assert.Contains(t, out, "    2,\n")
	assert.Contains(t, out, "with % questions', 2;")
}

func TestScriptIsDeterministic(t *testing.T) {
	q := sampleQuiz("Chapter_3", question("Can't stop?", "A", "A", "don't", "B", "won't"))

	render := func(at time.Time) string {
		var buf bytes.Buffer
		require.NoError(t, WriteHeader(&buf, 1, at))
		require.NoError(t, WriteQuiz(&buf, "fw-01-031", q, at))
		require.NoError(t, WriteVerification(&buf))
		return buf.String()
	}

	first := render(generated)
	second := render(generated.Add(time.Hour))
	assert.NotEqual(t, first, second)
	assert.Equal(t, stripGenerated(first), stripGenerated(second))
	assert.Contains(t, first, "don''t")
}

func TestWriteVerification(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVerification(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "-- Verification: List all quizzes created\nSELECT \n"))
	assert.True(t, strings.HasSuffix(out, "ORDER BY t.code;"))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, []SummaryRow{
		{Deck: "IS_Claim_01", Status: "parsed", Questions: 4, Detail: "cc-01-011"},
		{Deck: "Intro", Status: "skipped", Detail: "no slides after review"},
	}))

	out := buf.String()
	checkAllLinesEqualWidth(t, out)
	assert.Contains(t, out, "| IS_Claim_01 | parsed  | 4         | cc-01-011              |")
	assert.Contains(t, out, "| Intro       | skipped | -         | no slides after review |")

	buf.Reset()
	require.NoError(t, WriteSummary(&buf, nil))
	assert.Empty(t, buf.String())
}

func stripGenerated(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if !strings.HasPrefix(line, "-- Generated: ") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
