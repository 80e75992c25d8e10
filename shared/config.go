// Copyright (C) 2025 Incentra GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"time"

	"github.com/spf13/viper"
)

// EngineConfig carries every tunable of the assignment engine. It is passed
// around explicitly - no ambient globals.
type EngineConfig struct {
	// DefaultMaxConcurrentApplications is used for consultants that never got
	// an explicit capacity limit.
	DefaultMaxConcurrentApplications int `mapstructure:"defaultMaxConcurrentApplications"`

	// MinRating filters automatic matching. Zero disables the filter.
	MinRating float64 `mapstructure:"minRating"`

	// RatingWeight and RotationWeight shape the secondary ranking score for
	// candidates with equal load. With the defaults (1, 0) the ranking is
	// rating first, then longest time since last assignment.
	RatingWeight   float64 `mapstructure:"ratingWeight"`
	RotationWeight float64 `mapstructure:"rotationWeight"`

	AssignmentRetryInterval   time.Duration `mapstructure:"assignmentRetryInterval"`
	NotificationRetryInterval time.Duration `mapstructure:"notificationRetryInterval"`
	NotificationMaxAttempts   int           `mapstructure:"notificationMaxAttempts"`
}

// LoadEngineConfig reads the engine configuration from incentra.yaml (if
// present) and INCENTRA_* environment variables, falling back to defaults.
func LoadEngineConfig() (EngineConfig, error) {
	v := viper.New()
	v.SetConfigName("incentra")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/incentra")
	v.SetEnvPrefix("incentra")
	v.AutomaticEnv()

	v.SetDefault("defaultMaxConcurrentApplications", 10)
	v.SetDefault("minRating", 0.0)
	v.SetDefault("ratingWeight", 1.0)
	v.SetDefault("rotationWeight", 0.0)
	v.SetDefault("assignmentRetryInterval", 5*time.Minute)
	v.SetDefault("notificationRetryInterval", time.Minute)
	v.SetDefault("notificationMaxAttempts", 5)

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine - defaults and env vars apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return EngineConfig{}, err
		}
	}

	var config EngineConfig
	if err := v.Unmarshal(&config); err != nil {
		return EngineConfig{}, err
	}
	return config, nil
}
