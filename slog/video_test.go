package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/toolmedia"
	"github.com/fwojciec/toolmedia/mock"
	tmslog "github.com/fwojciec/toolmedia/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				return []toolmedia.VideoCandidate{
					{URL: toolmedia.YouTubeWatchURL("a1"), Title: "Acme tutorial"},
					{URL: toolmedia.YouTubeWatchURL("a2"), Title: "Acme in 5 minutes"},
				}, nil
			},
		}

		videos, err := tmslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "Acme tutorial")

		require.NoError(t, err)
		assert.Len(t, videos, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=\"video search\"")
		assert.Contains(t, output, "query=\"Acme tutorial\"")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs not implemented searches", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.VideoSearcher{
			SearchFn: func(ctx context.Context, query string) ([]toolmedia.VideoCandidate, error) {
				return nil, toolmedia.Errorf(toolmedia.ENOTIMPLEMENTED, "keyed video search is not implemented")
			},
		}

		_, err := tmslog.NewLoggingSearcher(inner, logger).Search(context.Background(), "Acme demo")

		assert.Equal(t, toolmedia.ENOTIMPLEMENTED, toolmedia.ErrorCode(err))
		assert.Contains(t, buf.String(), "keyed video search is not implemented")
	})
}

func TestLoggingChannelFeed_Videos(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ChannelFeed{
		VideosFn: func(ctx context.Context, feedURL string) ([]toolmedia.VideoCandidate, error) {
			return []toolmedia.VideoCandidate{{URL: toolmedia.YouTubeWatchURL("f1"), Title: "Changelog"}}, nil
		},
	}
	feedURL := "https://www.youtube.com/feeds/videos.xml?channel_id=UCabcdefghijklmnopqrstuv"

	videos, err := tmslog.NewLoggingChannelFeed(inner, logger).Videos(context.Background(), feedURL)

	require.NoError(t, err)
	assert.Len(t, videos, 1)
	output := buf.String()
	assert.Contains(t, output, "msg=\"channel feed\"")
	assert.Contains(t, output, "count=1")
}
