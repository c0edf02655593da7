// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/habit-tracker/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	table := renderTable([][2]string{
		{"Application", "HabitTracker client"},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	})

	return renderPage("ABOUT", table, "esc: back")
}
