// Package providermock provides a programmable test double for a
// structured-query content provider.
//
// Tests register the calls they expect, each with the result to hand back,
// then run the code under test against the double. Every call must match a
// registered expectation or the test fails.
//
//	func TestLoadPerson(t *testing.T) {
//	    p := providermock.New(t, providermock.WithVerifyOnCleanup())
//	    p.ExpectQuery("content://contacts/people/1").
//	        WithColumns("id", "name").
//	        ReturnRow(values.Of("id", 1, "name", "alice"))
//
//	    person, err := LoadPerson(p, 1)
//	    require.NoError(t, err)
//	    require.Equal(t, "alice", person.Name)
//	}
//
// Expectations are matched in registration order and the first match wins.
// A matched expectation is consumed unless AnyNumberOfTimes was set. Verify
// (or WithVerifyOnCleanup) fails the test when a non-repeatable query or
// insert was never exercised; type lookups are never verified.
//
// A Provider is not safe for concurrent use.
package providermock

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/pay-theory/providermock/pkg/core"
	mockerrors "github.com/pay-theory/providermock/pkg/errors"
	"github.com/pay-theory/providermock/pkg/expectation"
	"github.com/pay-theory/providermock/pkg/resource"
	"github.com/pay-theory/providermock/pkg/resultset"
	"github.com/pay-theory/providermock/pkg/values"
)

var (
	_ core.ContentProvider = (*Provider)(nil)
	_ core.Expecter        = (*Provider)(nil)
)

// Provider is the programmable content provider double
type Provider struct {
	t     require.TestingT
	store *expectation.Store
	log   *logrus.Entry
}

// New creates a Provider that reports failures to t
func New(t require.TestingT, opts ...Option) *Provider {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return NewWithConfig(t, cfg)
}

// NewWithConfig creates a Provider from an explicit configuration
func NewWithConfig(t require.TestingT, cfg *Config) *Provider {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	p := &Provider{
		t:     t,
		store: expectation.NewStore(),
		log:   cfg.entry(),
	}

	if cfg.VerifyOnCleanup {
		if c, ok := t.(interface{ Cleanup(func()) }); ok {
			c.Cleanup(p.Verify)
		} else {
			p.log.Warn("VerifyOnCleanup requested but TestingT has no Cleanup; call Verify explicitly")
		}
	}

	return p
}

// ExpectQuery registers a query expectation for uri. The returned handle is
// already committed; configure it before the code under test runs.
func (p *Provider) ExpectQuery(uri resource.URI) *expectation.Query {
	q := expectation.NewQuery(uri)
	p.store.AddQuery(q)
	p.log.WithFields(logrus.Fields{"op": "ExpectQuery", "uri": uri}).Debug("registered query expectation")
	return q
}

// ExpectTypeQuery registers typ as the type of uri. A later registration for
// the same uri replaces the earlier one.
func (p *Provider) ExpectTypeQuery(uri resource.URI, typ string) {
	if p.store.SetType(uri, typ) {
		p.log.WithFields(logrus.Fields{"op": "ExpectTypeQuery", "uri": uri, "type": typ}).Debug("replaced type expectation")
		return
	}
	p.log.WithFields(logrus.Fields{"op": "ExpectTypeQuery", "uri": uri, "type": typ}).Debug("registered type expectation")
}

// ExpectInsert registers an insert of fields into uri answered with result.
// Every argument is required: a missing one fails the test immediately and
// nil is returned.
func (p *Provider) ExpectInsert(uri resource.URI, fields values.Values, result resource.URI) *expectation.Insert {
	if h, ok := p.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	ins, err := expectation.NewInsert(uri, fields, result)
	if err != nil {
		p.fail(err)
		return nil
	}
	p.store.AddInsert(ins)
	p.log.WithFields(logrus.Fields{"op": "ExpectInsert", "uri": uri, "result": result}).Debug("registered insert expectation")
	return ins
}

// Query answers a query from the first matching expectation
func (p *Provider) Query(uri resource.URI, columns []string, filter string, filterArgs []any, orderBy string) (*resultset.ResultSet, error) {
	if h, ok := p.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	call := expectation.QueryCall{
		URI:        uri,
		Columns:    columns,
		Filter:     filter,
		FilterArgs: filterArgs,
		OrderBy:    orderBy,
	}

	if !p.store.HasQueries() {
		return nil, p.fail(mockerrors.NewErrorWithDetail("Query", uri.String(), mockerrors.ErrUnexpectedCall,
			"actual: %s", call))
	}

	q, ok := p.store.MatchQuery(call)
	if !ok {
		outstanding := p.store.Queries()
		return nil, p.fail(mockerrors.NewErrorWithDetail("Query", uri.String(), mockerrors.ErrNoMatchingExpectation,
			"expected one of: %s. actual: %s%s", listOf(outstanding), call, queryDiffs(outstanding, call)))
	}

	p.log.WithFields(logrus.Fields{
		"op":         "Query",
		"uri":        uri,
		"repeatable": q.Repeatable(),
		"remaining":  len(p.store.Queries()),
	}).Debug("matched query expectation")

	rs, err := q.Result(columns)
	if err != nil {
		return nil, p.fail(mockerrors.NewErrorWithDetail("Query", uri.String(), err,
			"cannot build result for %s", q))
	}
	return rs, nil
}

// GetType answers a type lookup from the registered types
func (p *Provider) GetType(uri resource.URI) (string, error) {
	if h, ok := p.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !p.store.HasTypes() {
		return "", p.fail(mockerrors.NewErrorWithDetail("GetType", uri.String(), mockerrors.ErrUnexpectedCall,
			"actual: %s", uri))
	}

	typ, ok := p.store.LookupType(uri)
	if !ok {
		return "", p.fail(mockerrors.NewErrorWithDetail("GetType", uri.String(), mockerrors.ErrUnknownType,
			"no type registered for %s; known: %s", uri, listOf(p.store.Types())))
	}

	p.log.WithFields(logrus.Fields{"op": "GetType", "uri": uri, "type": typ}).Debug("matched type expectation")
	return typ, nil
}

// Insert answers an insert from the first matching expectation
func (p *Provider) Insert(uri resource.URI, fields values.Values) (resource.URI, error) {
	if h, ok := p.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	call := expectation.InsertCall{URI: uri, Values: fields}

	if !p.store.HasInserts() {
		return "", p.fail(mockerrors.NewErrorWithDetail("Insert", uri.String(), mockerrors.ErrUnexpectedCall,
			"actual: %s", call))
	}

	ins, ok := p.store.MatchInsert(call)
	if !ok {
		outstanding := p.store.Inserts()
		return "", p.fail(mockerrors.NewErrorWithDetail("Insert", uri.String(), mockerrors.ErrNoMatchingExpectation,
			"expected one of: %s. actual: %s%s", listOf(outstanding), call, insertDiffs(outstanding, call)))
	}

	p.log.WithFields(logrus.Fields{
		"op":         "Insert",
		"uri":        uri,
		"result":     ins.ResultURI(),
		"repeatable": ins.Repeatable(),
		"remaining":  len(p.store.Inserts()),
	}).Debug("matched insert expectation")

	return ins.ResultURI(), nil
}

// Reset discards every registered expectation
func (p *Provider) Reset() {
	p.store.Reset()
	p.log.Debug("reset expectations")
}

// fail logs err, reports it to the test and aborts the test. It returns err
// for TestingT implementations whose FailNow returns.
func (p *Provider) fail(err error) error {
	if h, ok := p.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	p.log.WithError(err).Warn("provider expectation failure")
	require.Fail(p.t, err.Error())
	return err
}
