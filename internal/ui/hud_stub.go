//go:build !ebiten

package ui

import "agelife/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, core.ParameterSnapshot, []string) int { return 0 }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
