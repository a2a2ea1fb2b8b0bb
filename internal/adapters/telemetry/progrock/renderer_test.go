package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/pharbuild/internal/adapters/telemetry/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestRenderer_WriteStatus_Lifecycle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := progrock.NewRenderer(&buf)

	start := time.Now()
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{
			{Id: "1", Name: "install", Started: timestamppb.New(start)},
		},
	}))
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Logs: []*vprogrock.VertexLog{
			{Vertex: "1", Data: []byte("Installing nette/di\nGenerating auto")},
		},
	}))
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Logs: []*vprogrock.VertexLog{
			{Vertex: "1", Data: []byte("load files\n")},
		},
	}))
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{
			{
				Id:        "1",
				Name:      "install",
				Started:   timestamppb.New(start),
				Completed: timestamppb.New(start.Add(1500 * time.Millisecond)),
			},
		},
	}))
	require.NoError(t, r.Close())

	out := buf.String()
	assert.Contains(t, out, "Starting...")
	assert.Contains(t, out, "Installing nette/di\n")
	assert.Contains(t, out, "Generating autoload files\n")
	assert.Contains(t, out, "[install] ✓ Completed in 1.5s")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Generating autoload files")),
		bytes.Index(buf.Bytes(), []byte("Completed in")))
}

func TestRenderer_WriteStatus_Failure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := progrock.NewRenderer(&buf)

	start := time.Now()
	msg := "exit status 1"
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{
			{Id: "1", Name: "prefix", Started: timestamppb.New(start)},
		},
	}))
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{
			{
				Id:        "1",
				Name:      "prefix",
				Started:   timestamppb.New(start),
				Completed: timestamppb.New(start.Add(time.Second)),
				Error:     &msg,
			},
		},
		Logs: []*vprogrock.VertexLog{
			{Vertex: "1", Data: []byte("scoper crashed")},
		},
	}))

	out := buf.String()
	assert.Contains(t, out, "scoper crashed\n")
	assert.Contains(t, out, "[prefix] ✗ Failed after 1s: exit status 1")
}

func TestRenderer_WriteStatus_CompletesOnce(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := progrock.NewRenderer(&buf)

	done := &vprogrock.Vertex{
		Id:        "1",
		Name:      "fetch",
		Started:   timestamppb.Now(),
		Completed: timestamppb.Now(),
	}
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{Vertexes: []*vprogrock.Vertex{done}}))
	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{Vertexes: []*vprogrock.Vertex{done}}))

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Starting...")))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Completed in")))
}

func TestRenderer_WriteStatus_IgnoresUnknownVertexLogs(t *testing.T) {
	var buf bytes.Buffer
	r := progrock.NewRenderer(&buf)

	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Logs: []*vprogrock.VertexLog{{Vertex: "missing", Data: []byte("orphan\n")}},
	}))

	assert.Empty(t, buf.String())
}

func TestRenderer_Close_FlushesPartialLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := progrock.NewRenderer(&buf)

	require.NoError(t, r.WriteStatus(&vprogrock.StatusUpdate{
		Vertexes: []*vprogrock.Vertex{{Id: "1", Name: "package"}},
		Logs:     []*vprogrock.VertexLog{{Vertex: "1", Data: []byte("Compressing phar")}},
	}))
	assert.NotContains(t, buf.String(), "Compressing phar")

	require.NoError(t, r.Close())
	assert.Contains(t, buf.String(), "Compressing phar\n")
}

func TestRecorder_RendersStages(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	rec := progrock.NewRecorder(progrock.NewRenderer(&buf))

	_, vertex := rec.Record(context.Background(), "fetch")
	_, err := vertex.Stdout().Write([]byte("Cloning into 'build'...\n"))
	require.NoError(t, err)
	vertex.Complete(errors.New("boom"))

	require.NoError(t, rec.Close())

	out := buf.String()
	assert.Contains(t, out, "Starting...")
	assert.Contains(t, out, "Cloning into 'build'...")
	assert.Contains(t, out, "[fetch] ✗ Failed after")
	assert.Contains(t, out, "boom")
}
