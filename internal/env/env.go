// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

// Package env wraps environment variable parsing with optional prefixing.
package env

import "github.com/caarlos0/env/v11"

type Options = env.Options

// Parse parses environment variables into v, honoring the given options.
func Parse(v interface{}, opts ...Options) error {
	if len(opts) == 0 {
		return env.Parse(v)
	}

	return env.ParseWithOptions(v, opts[0])
}
