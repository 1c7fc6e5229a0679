package slog_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/interests"
	"github.com/fwojciec/interests/mock"
	islog "github.com/fwojciec/interests/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingStrategy(t *testing.T) {
	t.Parallel()

	t.Run("logs name and outcome", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Strategy{
			NameFn: func() string { return "heading" },
			ExtractFn: func(doc interests.Document) (string, bool) {
				return "Tides.", true
			},
		}
		doc := &mock.Document{URLFn: func() string { return "https://uni.edu/faculty/a" }}

		s := islog.NewLoggingStrategy(inner, debugLogger(&buf))
		text, found := s.Extract(doc)

		assert.Equal(t, "heading", s.Name())
		assert.Equal(t, "Tides.", text)
		assert.True(t, found)
		output := buf.String()
		assert.Contains(t, output, "strategy=heading")
		assert.Contains(t, output, "found=true")
	})

	t.Run("logs miss", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Strategy{
			ExtractFn: func(doc interests.Document) (string, bool) {
				return "", false
			},
		}
		doc := &mock.Document{URLFn: func() string { return "https://uni.edu/faculty/b" }}

		_, found := islog.NewLoggingStrategy(inner, debugLogger(&buf)).Extract(doc)

		assert.False(t, found)
		assert.Contains(t, buf.String(), "found=false")
	})
}
