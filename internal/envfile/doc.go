// Package envfile resolves environment-file paths and inspects their
// contents.
//
// Path conventions follow the Laravel env:encrypt family: plaintext lives
// in ".env" (or ".env.{environment}"), artifacts carry an ".encrypted"
// suffix. Inspection uses dotenv parsing only to report variable counts in
// command output; it never gates encryption, and values are never surfaced.
package envfile
