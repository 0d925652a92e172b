package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceCommandFlipsWhenTopOverflows(t *testing.T) {
	stdout, _, err := execute(t, "place",
		"--anchor", "100,10,80,32",
		"--content", "120,40",
		"--placement", "top",
		"--boundary", "0,0,1024,800",
		"--json")
	require.NoError(t, err)

	var output struct {
		Boundary *struct {
			Width float64 `json:"width"`
		} `json:"boundary"`
		Result struct {
			X         float64 `json:"x"`
			Y         float64 `json:"y"`
			Placement string  `json:"placement"`
			Flipped   bool    `json:"flipped"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.NotNil(t, output.Boundary)
	require.Equal(t, 1024.0, output.Boundary.Width)
	require.Equal(t, "bottom", output.Result.Placement)
	require.True(t, output.Result.Flipped)
	require.InDelta(t, 80, output.Result.X, 1e-9)
	require.InDelta(t, 42, output.Result.Y, 1e-9)
}

func TestPlaceCommandTextOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected []string
		absent   []string
	}{
		{
			name:     "unbounded keeps the preferred side",
			args:     []string{"--anchor", "100,10,80,32", "--content", "120,40", "--placement", "top"},
			expected: []string{"placement: top\n", "box: x=80 y=-30 width=120 height=40"},
			absent:   []string{"flipped", "arrow offset"},
		},
		{
			name:     "flip is reported",
			args:     []string{"--anchor", "100,10,80,32", "--content", "120,40", "--placement", "top", "--boundary", "0,0,1024,800"},
			expected: []string{"placement: bottom (flipped)", "y=42"},
		},
		{
			name:     "arrow offset is printed with --arrow",
			args:     []string{"--anchor", "0,0,10,2", "--content", "20,4", "--placement", "bottomLeft", "--arrow", "--arrow-size", "1"},
			expected: []string{"placement: bottomLeft", "arrow offset:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, append([]string{"place"}, tt.args...)...)
			require.NoError(t, err)
			for _, want := range tt.expected {
				require.Contains(t, stdout, want)
			}
			for _, unwanted := range tt.absent {
				require.NotContains(t, stdout, unwanted)
			}
		})
	}
}

func TestPlaceCommandRejectsBadFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "short rect", args: []string{"--anchor", "1,2,3", "--content", "1,1"}, contains: "--anchor"},
		{name: "not a number", args: []string{"--anchor", "1,2,3,x", "--content", "1,1"}, contains: "invalid number"},
		{name: "negative size", args: []string{"--anchor", "0,0,1,1", "--content", "-1,1"}, contains: "must not be negative"},
		{name: "unknown placement", args: []string{"--anchor", "0,0,1,1", "--content", "1,1", "--placement", "north"}, contains: "--placement"},
		{name: "bad boundary", args: []string{"--anchor", "0,0,1,1", "--content", "1,1", "--boundary", "0,0"}, contains: "--boundary"},
		{name: "negative offset", args: []string{"--anchor", "0,0,1,1", "--content", "1,1", "--offset", "-2"}, contains: "must not be negative"},
		{name: "missing anchor", args: []string{"--content", "1,1"}, contains: "anchor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, append([]string{"place"}, tt.args...)...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}
