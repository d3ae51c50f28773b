// Package check provides test, expectation, assertion and panic operations
// that report through a log.Logger.
//
// Each operation receives the call site location and the literal text of the
// checked expression, both supplied by the caller:
//
//	c := check.New(logger)
//	c.Test(log.Here(), 2+2 == 4, "2+2 == 4")
//	c.Expect(log.Here(), len(items) > 0, "len(items) > 0", "no items for {}", user)
//	c.Require(log.Here(), cfg != nil, "cfg != nil", "configuration must be loaded")
//
// Termination policy per operation:
//
//	Test     never terminates; prints PASS or FAIL
//	Expect   never terminates; WARN on failure
//	Assert   ERROR on failure, terminates; inactive outside debug mode
//	Require  FATAL on failure, terminates
//	Panic    FATAL always, terminates
//
// Terminating operations call Logger.Terminate after the line is written,
// which is a no-op when the logger runs in test mode.
package check
