/*
 * config.go, part of goKin.
 *
 * Copyright 2024 The goKin authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the preprocessing and description parameters for trajdesc.
// Every field is optional; the Get* methods fall back to the defaults.
type Config struct {
	// Resampling
	Rate *float64 `json:"rate,omitempty" yaml:"rate,omitempty"` // Hz

	// Butterworth low-pass
	Cutoff *float64 `json:"cutoff,omitempty" yaml:"cutoff,omitempty"` // Hz
	Order  *int     `json:"order,omitempty" yaml:"order,omitempty"`
	Filter *bool    `json:"filter,omitempty" yaml:"filter,omitempty"`

	// Movement onset
	OnsetWindow *float64 `json:"onset_window,omitempty" yaml:"onset_window,omitempty"` // seconds
	Speed       *float64 `json:"speed_threshold,omitempty" yaml:"speed_threshold,omitempty"`

	// Tracker columns used as the coordinates of the trajectory, in order.
	// The first two are also the plane used for the onset speed.
	Axes []string `json:"axes,omitempty" yaml:"axes,omitempty"`
	Dims *int     `json:"dims,omitempty" yaml:"dims,omitempty"`

	Normalize *bool `json:"normalize,omitempty" yaml:"normalize,omitempty"`

	// Optional targets for the maximal log ratio, with Dims coordinates each.
	Alternative []float64 `json:"alternative,omitempty" yaml:"alternative,omitempty"`
	Correct     []float64 `json:"correct,omitempty" yaml:"correct,omitempty"`
}

// LoadConfig loads a Config from a JSON (.json) or YAML (.yaml, .yml) file.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	var unmarshal func([]byte, any) error
	switch ext := filepath.Ext(cleanPath); ext {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 << 20
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are consistent.
func (c *Config) Validate() error {
	if c.GetRate() <= 0 {
		return fmt.Errorf("rate must be positive, got %f", c.GetRate())
	}
	if c.GetFilter() {
		if fc := c.GetCutoff(); fc <= 0 || fc >= c.GetRate()/2 {
			return fmt.Errorf("cutoff must be between 0 and rate/2, got %f", fc)
		}
		if c.GetOrder() < 1 {
			return fmt.Errorf("order must be at least 1, got %d", c.GetOrder())
		}
	}
	if c.GetOnsetWindow() <= 0 {
		return fmt.Errorf("onset_window must be positive, got %f", c.GetOnsetWindow())
	}
	d := c.GetDims()
	if d != 2 && d != 3 {
		return fmt.Errorf("dims must be 2 or 3, got %d", d)
	}
	if len(c.GetAxes()) < d {
		return fmt.Errorf("%d axes needed, got %v", d, c.GetAxes())
	}
	if (c.Alternative == nil) != (c.Correct == nil) {
		return fmt.Errorf("alternative and correct targets must be given together")
	}
	if c.Alternative != nil && (len(c.Alternative) != d || len(c.Correct) != d) {
		return fmt.Errorf("targets must have %d coordinates", d)
	}
	return nil
}

// GetRate returns the resampling rate or the default of 90 Hz.
func (c *Config) GetRate() float64 {
	if c.Rate == nil {
		return 90
	}
	return *c.Rate
}

func (c *Config) GetCutoff() float64 {
	if c.Cutoff == nil {
		return 10
	}
	return *c.Cutoff
}

func (c *Config) GetOrder() int {
	if c.Order == nil {
		return 2
	}
	return *c.Order
}

func (c *Config) GetFilter() bool {
	if c.Filter == nil {
		return true
	}
	return *c.Filter
}

// GetOnsetWindow returns the time the speed must stay above the threshold, 100 ms by default.
func (c *Config) GetOnsetWindow() float64 {
	if c.OnsetWindow == nil {
		return 0.1
	}
	return *c.OnsetWindow
}

func (c *Config) GetSpeed() float64 {
	if c.Speed == nil {
		return 0.6
	}
	return *c.Speed
}

// GetAxes returns the tracker columns for the coordinates. The default,
// pos_x, pos_z, pos_y, puts the horizontal plane first and the height last.
func (c *Config) GetAxes() []string {
	if len(c.Axes) == 0 {
		return []string{"pos_x", "pos_z", "pos_y"}
	}
	return c.Axes
}

func (c *Config) GetDims() int {
	if c.Dims == nil {
		return 2
	}
	return *c.Dims
}

func (c *Config) GetNormalize() bool {
	if c.Normalize == nil {
		return false
	}
	return *c.Normalize
}
