package deck

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceScanner struct {
	slides []Slide
	err    error
	closed bool
}

func (s *sliceScanner) Next() (Slide, error) {
	if len(s.slides) == 0 {
		if s.err != nil {
			return Slide{}, s.err
		}
		return Slide{}, io.EOF
	}
	next := s.slides[0]
	s.slides = s.slides[1:]
	return next, nil
}

func (s *sliceScanner) Close() error {
	s.closed = true
	return nil
}

func TestCollect(t *testing.T) {
	sc := &sliceScanner{slides: []Slide{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}}}

	slides, err := Collect(sc)
	require.NoError(t, err)
	assert.Equal(t, []Slide{{Index: 0, Text: "a"}, {Index: 1, Text: "b"}}, slides)
	assert.True(t, sc.closed)
}

func TestCollect_Error(t *testing.T) {
	boom := errors.New("boom")
	sc := &sliceScanner{slides: []Slide{{Index: 0, Text: "a"}}, err: boom}

	_, err := Collect(sc)
	assert.ErrorIs(t, err, boom)
	assert.True(t, sc.closed)
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"data/IS_Claim_01.pptx", "IS_Claim_01"},
		{"Chapter_3.ppt", "Chapter_3"},
		{"/abs/dir/name.with.dots.pptx", "name.with.dots"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.path))
		})
	}
}
