// Package registration holds the sign-up form's pure core: the declarative
// validation schema for the registration and sign-in inputs, and the
// submission state machine (Idle, Pending, Error) that the views drive.
//
// Nothing here performs I/O. Views call Validate before delegating to the
// auth client, call State.Begin immediately before the call, and feed the
// single completion (success or failure) back through Succeed or Fail.
package registration
