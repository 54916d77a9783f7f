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

package hook

import (
	"github.com/tickbook/tickbook/core/execution"
	"github.com/tickbook/tickbook/core/ledger"
	"github.com/tickbook/tickbook/core/redemption"
	"github.com/tickbook/tickbook/libs/config/encoding"
	"github.com/tickbook/tickbook/logging"
)

const (
	// namedLogger is the identifier for package and should ideally match the package name
	// this is simply emitted as a hierarchical label e.g. 'api.grpc'.
	namedLogger = "hook"

	// defaultHoldingAccount receives swap output taken from pools.
	defaultHoldingAccount = "tickbook-holding"
)

// Config is the configuration of the hook package, tying the engine
// configurations together.
type Config struct {
	Level          encoding.LogLevel `long:"log-level"`
	HoldingAccount string            `long:"holding-account" description:"Account swap proceeds are withdrawn into"`

	Ledger     ledger.Config     `group:"Ledger"     namespace:"ledger"`
	Execution  execution.Config  `group:"Execution"  namespace:"execution"`
	Redemption redemption.Config `group:"Redemption" namespace:"redemption"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:          encoding.LogLevel{Level: logging.InfoLevel},
		HoldingAccount: defaultHoldingAccount,
		Ledger:         ledger.NewDefaultConfig(),
		Execution:      execution.NewDefaultConfig(),
		Redemption:     redemption.NewDefaultConfig(),
	}
}
