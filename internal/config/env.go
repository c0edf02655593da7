// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment using its `env` and
// `envPrefix` tags. Unset variables leave fields zero so later merging
// keeps defaults.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{UseFieldNameByDefault: false}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
