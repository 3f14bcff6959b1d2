// Copyright 2025 The diffo authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diffo

import "mellow.io/diffo/internal/config"

// Option configures the behavior of the diff functions.
type Option = config.Option

// Context sets the number of unchanged lines retained around each run of changes in the returned
// chunks. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Aggressiveness bounds the search frontier: a node of the edit graph that falls more than n steps
// behind the furthest-reached node is abandoned instead of explored. This bounds the work on
// pathological inputs with many repeated lines, but the result is no longer guaranteed to be a
// shortest edit script. By default the search is exact.
func Aggressiveness(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Agg = max(0, n)
		return config.Agg
	}
}

// MissingAsEmpty makes [DiffFiles] treat a file that does not exist as empty instead of returning
// an error.
func MissingAsEmpty() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MissingAsEmpty = true
		return config.MissingAsEmpty
	}
}
