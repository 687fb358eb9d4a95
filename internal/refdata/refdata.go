// Package refdata declares the enumeration sets shipped with the enumkit
// binaries. Importing it (usually blank) registers the sets in the process
// directory; the API, the CLI, and the test suites all serve and exercise
// these.
package refdata

import (
	"github.com/google/uuid"

	"github.com/ahrav/enumkit/pkg/enum"
)

// Severity ranks a finding. Values are spaced by ten so hosts can wedge
// custom levels between the shipped ones.
type Severity struct{ enum.Entry }

var (
	Severities = enum.NewSet[*Severity]("severity")

	SeverityLow      = Severities.MustRegister(&Severity{}, "Low", enum.WithValue(10), enum.WithIndex(1), enum.WithOID(uuid.MustParse("6f1c2b5e-0a6e-4c89-9d2a-6d3f7a1b4c01")))
	SeverityMedium   = Severities.MustRegister(&Severity{}, "Medium", enum.WithValue(20), enum.WithIndex(2), enum.WithOID(uuid.MustParse("6f1c2b5e-0a6e-4c89-9d2a-6d3f7a1b4c02")))
	SeverityHigh     = Severities.MustRegister(&Severity{}, "High", enum.WithValue(30), enum.WithIndex(3), enum.WithOID(uuid.MustParse("6f1c2b5e-0a6e-4c89-9d2a-6d3f7a1b4c03")))
	SeverityCritical = Severities.MustRegister(&Severity{}, "Critical", enum.WithValue(40), enum.WithIndex(4), enum.WithOID(uuid.MustParse("6f1c2b5e-0a6e-4c89-9d2a-6d3f7a1b4c04")))
)

// Environment identifies a deployment tier. Values are auto-assigned; the
// indices put Production first in UI listings. Legacy is kept for decoding
// old payloads but hidden from pickers.
type Environment struct{ enum.Entry }

var (
	Environments = enum.NewSet[*Environment]("environment")

	EnvProduction  = Environments.MustRegister(&Environment{}, "Production", enum.WithIndex(1))
	EnvStaging     = Environments.MustRegister(&Environment{}, "Staging", enum.WithIndex(2))
	EnvDevelopment = Environments.MustRegister(&Environment{}, "Development", enum.WithIndex(3))
	EnvLegacy      = Environments.MustRegister(&Environment{}, "Legacy", enum.WithIndex(9), enum.Hidden())
)

// AccessFlag is a bitmask member; combine with enum.Combine and test with
// enum.HasFlag.
type AccessFlag struct{ enum.Entry }

var (
	AccessFlags = enum.NewSet[*AccessFlag]("access-flag")

	AccessRead    = AccessFlags.MustRegister(&AccessFlag{}, "Read", enum.WithValue(1), enum.WithIndex(1))
	AccessWrite   = AccessFlags.MustRegister(&AccessFlag{}, "Write", enum.WithValue(2), enum.WithIndex(2))
	AccessExecute = AccessFlags.MustRegister(&AccessFlag{}, "Execute", enum.WithValue(4), enum.WithIndex(3))
	AccessAdmin   = AccessFlags.MustRegister(&AccessFlag{}, "Admin", enum.WithValue(8), enum.WithIndex(4))
)

func init() {
	if err := Severities.SetDefault(SeverityLow); err != nil {
		panic(err)
	}
	if err := Environments.SetDefault(EnvDevelopment); err != nil {
		panic(err)
	}
}
