package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReport(t *testing.T) {
	out := renderReport(demoPullRequests)
	require.NotEmpty(t, out)

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "AUTHOR")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "DESCRIPTION")

	for _, pr := range demoPullRequests {
		assert.Contains(t, out, pr.Title)
		assert.Contains(t, out, pr.Author)
		assert.Contains(t, out, pr.Status)
		assert.Contains(t, out, pr.Description)
	}
}

func TestRenderReport_Empty(t *testing.T) {
	out := renderReport(nil)
	assert.Contains(t, out, "TITLE")
}
