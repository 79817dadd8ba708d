package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/natarchives/visitordesk/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummary(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "frontdesk")

	checkInTestVisitor(t, env, "1", "General")
	checkInTestVisitor(t, env, "2", "Researcher")
	checkInTestVisitor(t, env, "3", "Researcher")

	resp := env.do(t, http.MethodGet, "/api/reports/daily-summary?date=2024-01-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, data := decodeResponse(t, resp)
	var summary domain.DailySummary
	require.NoError(t, json.Unmarshal(data, &summary))

	assert.Equal(t, 3, summary.TotalVisitors)
	assert.Equal(t, 1, summary.GeneralVisitors)
	assert.Equal(t, 2, summary.Researchers)
	assert.Len(t, summary.Departments, len(domain.Departments))
	assert.Equal(t, 3, summary.Departments["Library"])
	assert.Zero(t, summary.Departments["Gallery"])
}

func TestDailySummaryRequiresDate(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "frontdesk")

	resp := env.do(t, http.MethodGet, "/api/reports/daily-summary", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/reports/daily-summary?date=yesterday", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportDailySummary(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "frontdesk")

	visitor := checkInTestVisitor(t, env, "1", "General")
	resp := env.do(t, http.MethodPatch, fmt.Sprintf("/api/visitors/%d/checkout", visitor.ID), nil)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/reports/daily-summary/export?date=2024-01-01", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "daily-summary-2024-01-01.txt")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, "Total visitors:   1")
	for _, dept := range domain.Departments {
		assert.Contains(t, text, dept)
	}
	// one completed visit means a real average, not the sentinel
	assert.NotContains(t, text, "unavailable")
	assert.True(t, strings.Contains(text, "Average visit duration:"))
}

func TestExportDailySummaryNoCompletedVisits(t *testing.T) {
	env := newTestEnv(t)
	env.login(t, "frontdesk")

	checkInTestVisitor(t, env, "1", "General")

	resp := env.do(t, http.MethodGet, "/api/reports/daily-summary/export?date=2024-01-01", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// nobody has checked out: no duration exists, so the report must show
	// the sentinel rather than a zero duration
	assert.Contains(t, string(body), "Average visit duration: unavailable")
}
