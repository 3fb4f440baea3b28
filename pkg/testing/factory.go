package testing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/stretchr/testify/require"

	"github.com/pay-theory/providermock"
)

// Factory hands out one Provider per authority so code that resolves
// providers by authority can be wired to doubles. All providers share t.
type Factory struct {
	t         require.TestingT
	opts      []providermock.Option
	providers map[string]*providermock.Provider
}

// NewFactory creates a Factory whose providers report to t
func NewFactory(t require.TestingT, opts ...providermock.Option) *Factory {
	return &Factory{
		t:         t,
		opts:      opts,
		providers: make(map[string]*providermock.Provider),
	}
}

// Provider returns the double for authority, creating it on first use
func (f *Factory) Provider(authority string) *providermock.Provider {
	if p, ok := f.providers[authority]; ok {
		return p
	}
	opts := append([]providermock.Option{providermock.WithName(authority)}, f.opts...)
	p := providermock.New(f.t, opts...)
	f.providers[authority] = p
	return p
}

// Authorities returns the authorities handed out so far, sorted
func (f *Factory) Authorities() []string {
	out := make([]string, 0, len(f.providers))
	for a := range f.providers {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// ExpectationsWereMet checks every provider and joins their unmet expectations
func (f *Factory) ExpectationsWereMet() error {
	var errs []error
	for _, authority := range f.Authorities() {
		if err := f.providers[authority].ExpectationsWereMet(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", authority, err))
		}
	}
	return errors.Join(errs...)
}

// VerifyAll runs Verify on every provider in authority order
func (f *Factory) VerifyAll() {
	if h, ok := f.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if err := f.ExpectationsWereMet(); err != nil {
		require.Fail(f.t, err.Error())
	}
}
