//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func update(vertexes ...*progrock.Vertex) MsgTapeUpdate {
	return MsgTapeUpdate{Update: &progrock.StatusUpdate{Vertexes: vertexes}}
}

func TestModel_TapeUpdate_AddsRunningVertex(t *testing.T) {
	m := NewModel(NewFeed())

	_, cmd := m.Update(update(&progrock.Vertex{Id: "1", Name: "//App:Model#core-data-model,iphoneos"}))

	require.Len(t, m.vertices, 1)
	assert.Equal(t, "1", m.vertices[0].ID)
	assert.Equal(t, statusRunning, m.vertices[0].Status)
	assert.True(t, m.vertices[0].Expanded)
	assert.NotNil(t, cmd)
}

func TestModel_TapeUpdate_SkipsInternalVertices(t *testing.T) {
	m := NewModel(NewFeed())

	m.Update(update(&progrock.Vertex{Id: "1", Name: "setup", Internal: true}))

	assert.Empty(t, m.vertices)
}

func TestModel_TapeUpdate_Completion(t *testing.T) {
	now := timestamppb.New(time.Now())
	boom := "boom"

	tests := []struct {
		name     string
		vertex   *progrock.Vertex
		status   string
		expanded bool
	}{
		{
			name:     "success collapses",
			vertex:   &progrock.Vertex{Id: "1", Completed: now},
			status:   statusCompleted,
			expanded: false,
		},
		{
			name:     "cached",
			vertex:   &progrock.Vertex{Id: "1", Completed: now, Cached: true},
			status:   statusCached,
			expanded: false,
		},
		{
			name:     "failure stays expanded",
			vertex:   &progrock.Vertex{Id: "1", Completed: now, Error: &boom},
			status:   statusFailed,
			expanded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(NewFeed())
			m.Update(update(&progrock.Vertex{Id: "1", Name: "Model"}))

			tt.vertex.Name = "Model"
			m.Update(update(tt.vertex))

			require.Len(t, m.vertices, 1)
			assert.Equal(t, tt.status, m.vertices[0].Status)
			assert.Equal(t, tt.expanded, m.vertices[0].Expanded)
		})
	}
}

func TestModel_NewVertexTakesFocus(t *testing.T) {
	m := NewModel(NewFeed())
	boom := "boom"
	now := timestamppb.New(time.Now())

	m.Update(update(&progrock.Vertex{Id: "1", Name: "A"}, &progrock.Vertex{Id: "2", Name: "B"}))
	m.Update(update(&progrock.Vertex{Id: "2", Name: "B", Completed: now, Error: &boom}))
	m.Update(update(&progrock.Vertex{Id: "3", Name: "C"}))

	assert.False(t, m.vertices[0].Expanded, "older running vertex collapses")
	assert.True(t, m.vertices[1].Expanded, "failed vertex stays expanded")
	assert.True(t, m.vertices[2].Expanded, "newest vertex is expanded")
}

func TestModel_Logs(t *testing.T) {
	m := NewModel(NewFeed())
	m.Update(update(&progrock.Vertex{Id: "1", Name: "Model"}))

	m.Update(MsgTapeUpdate{Update: &progrock.StatusUpdate{
		Logs: []*progrock.VertexLog{
			{Vertex: "1", Data: []byte("first\nsec")},
			{Vertex: "1", Data: []byte("ond\n")},
			{Vertex: "unknown", Data: []byte("dropped\n")},
		},
	}})

	assert.Equal(t, []string{"first", "second"}, m.logs["1"])
	assert.NotContains(t, m.logs, "unknown")

	for range 10 {
		m.appendLog("1", []byte("line\n"))
	}
	assert.Len(t, m.logs["1"], maxLogLines)
}

func TestModel_TapeEnded_Quits(t *testing.T) {
	m := NewModel(NewFeed())

	_, cmd := m.Update(MsgTapeEnded{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(NewFeed())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
}

func TestFeed(t *testing.T) {
	f := NewFeed()
	first := &progrock.StatusUpdate{}
	second := &progrock.StatusUpdate{}

	require.NoError(t, f.WriteStatus(first))
	require.NoError(t, f.WriteStatus(second))
	require.NoError(t, f.Close())
	require.NoError(t, f.WriteStatus(&progrock.StatusUpdate{}))

	got, err := f.Read()
	require.NoError(t, err)
	assert.Same(t, first, got)

	got, err = f.Read()
	require.NoError(t, err)
	assert.Same(t, second, got)

	_, err = f.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFeed_ReadBlocksUntilWrite(t *testing.T) {
	f := NewFeed()
	want := &progrock.StatusUpdate{}

	done := make(chan *progrock.StatusUpdate)
	go func() {
		got, _ := f.Read()
		done <- got
	}()

	require.NoError(t, f.WriteStatus(want))
	select {
	case got := <-done:
		assert.Same(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("Read did not return after WriteStatus")
	}
}

func TestWaitForTape(t *testing.T) {
	f := NewFeed()
	want := &progrock.StatusUpdate{}
	require.NoError(t, f.WriteStatus(want))
	require.NoError(t, f.Close())

	msg := WaitForTape(f)()
	assert.Equal(t, MsgTapeUpdate{Update: want}, msg)

	assert.Equal(t, MsgTapeEnded{}, WaitForTape(f)())
}
