//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModel_View(t *testing.T) {
	m := NewModel(nil)
	m.width = 80
	m.height = 20

	m.vertices = []VertexState{
		{ID: "1", Name: "Running Action", Status: statusRunning},
		{ID: "2", Name: "Built Action", Status: statusCompleted},
		{ID: "3", Name: "Cached Action", Status: statusCached},
		{ID: "4", Name: "Failed Action", Status: statusFailed},
	}

	output := m.View()

	for _, name := range []string{"Running Action", "Built Action", "Cached Action", "Failed Action"} {
		assert.Contains(t, output, name)
	}
	assert.Contains(t, output, "✓")
	assert.Contains(t, output, "↺")
	assert.Contains(t, output, "✗")
}

func TestModel_View_ExpandedLogs(t *testing.T) {
	m := NewModel(nil)
	m.width = 80
	m.height = 20

	vID := "action-1"
	m.vertices = []VertexState{
		{ID: vID, Name: "Action with Logs", Status: statusFailed, Expanded: true},
		{ID: "action-2", Name: "Collapsed", Status: statusCompleted},
	}
	m.logs[vID] = []string{"older_log", "log_A", "log_B", "log_C", "log_D", "log_E"}
	m.logs["action-2"] = []string{"hidden"}

	output := m.View()

	assert.NotContains(t, output, "older_log", "only the tail is shown")
	assert.Contains(t, output, "log_A")
	assert.Contains(t, output, "log_E")
	assert.NotContains(t, output, "hidden", "collapsed vertices hide their logs")
}

func TestModel_View_Truncation(t *testing.T) {
	m := NewModel(nil)
	m.width = 20
	m.height = 3

	for i := range 5 {
		m.vertices = append(m.vertices, VertexState{
			ID:     fmt.Sprint(i),
			Name:   fmt.Sprintf("action-%d", i),
			Status: statusCompleted,
		})
	}
	m.vertices[4].Expanded = true
	m.logs["4"] = []string{strings.Repeat("x", 50)}

	output := m.View()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")

	assert.Len(t, lines, 3)
	assert.NotContains(t, output, "action-1")
	assert.Contains(t, output, "action-4")
	assert.NotContains(t, output, strings.Repeat("x", 17))
}
