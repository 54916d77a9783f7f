// Copyright (C) 2023 Gobalsky Labs Limited
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"time"

	"github.com/tickbook/tickbook/libs/config/encoding"
	"github.com/tickbook/tickbook/logging"
)

const namedLogger = "metrics"

// Config represents the configuration of the metric package.
type Config struct {
	Level   encoding.LogLevel `long:"log-level"`
	Enabled encoding.Bool     `long:"enabled" description:"Whether or not to expose the prometheus endpoint"`
	Port    int               `long:"port" description:"The port to expose prometheus metrics on"`
	Path    string            `long:"path" description:"The path the prometheus handler is registered at"`
	Timeout encoding.Duration `long:"timeout" description:"Read and write timeout of the prometheus endpoint"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:   encoding.LogLevel{Level: logging.InfoLevel},
		Enabled: false,
		Port:    2112,
		Path:    "/metrics",
		Timeout: encoding.Duration{Duration: 5 * time.Second},
	}
}
