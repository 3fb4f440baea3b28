package providermock

import (
	"errors"

	"github.com/stretchr/testify/assert"

	mockerrors "github.com/pay-theory/providermock/pkg/errors"
)

// Verify fails the test if any non-repeatable query or insert expectation
// was never exercised. Queries and inserts are checked independently and
// each category is reported on its own before the test is aborted.
func (p *Provider) Verify() {
	if h, ok := p.t.(interface{ Helper() }); ok {
		h.Helper()
	}

	failed := false
	for _, err := range p.unmet() {
		p.log.WithError(err).Warn("unmet expectations")
		assert.Fail(p.t, err.Error())
		failed = true
	}
	if failed {
		p.t.FailNow()
	}
}

// ExpectationsWereMet reports unmet query and insert expectations without
// failing the test.
func (p *Provider) ExpectationsWereMet() error {
	return errors.Join(p.unmet()...)
}

func (p *Provider) unmet() []error {
	var errs []error
	if missed := p.store.MissedQueries(); len(missed) > 0 {
		errs = append(errs, mockerrors.NewErrorWithDetail("VerifyQueries", "", mockerrors.ErrUnmetExpectation,
			"not all expected queries have been called: %s", listOf(missed)))
	}
	if missed := p.store.MissedInserts(); len(missed) > 0 {
		errs = append(errs, mockerrors.NewErrorWithDetail("VerifyInserts", "", mockerrors.ErrUnmetExpectation,
			"not all expected inserts have been called: %s", listOf(missed)))
	}
	return errs
}
