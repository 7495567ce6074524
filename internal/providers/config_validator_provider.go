package providers

import (
	"github.com/gookit/validate"

	"solaced/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks the config against the validate tags declared on the
// structures.Config tree.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if v.Validate() {
		return nil
	}
	return v.Errors.OneError()
}
