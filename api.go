// Package censor masks sensitive data in arbitrary Go values before they
// are logged, audited or returned to a client.
//
// A Processor walks a value once, decides for every leaf whether it is
// shown or replaced by a mask token, and renders the result as text or
// JSON. Both renderings are produced from the same masked tree, so they
// never disagree about what is hidden.
//
// # Policy
//
// Strings are hidden unless something says otherwise. Numbers, booleans
// and times are shown unless something says otherwise. The rules, in
// order of precedence:
//
//   - A field tagged censor:"mask" is replaced by the mask token whole.
//   - A field tagged censor:"-" is left out.
//   - A registered type handler renders its values verbatim.
//   - A field tagged censor:"display" is shown, including nested values.
//   - An untagged string is masked, unless it is empty.
//   - Any other untagged scalar is shown.
//
// Every displayed string is then scanned with the exclude patterns, and
// each match is replaced by the mask token.
//
// # Basic Usage
//
//	type User struct {
//	    ID       int    `json:"id"`
//	    Name     string `json:"name" censor:"display"`
//	    Email    string `json:"email"`
//	    Password string `json:"-" censor:"-"`
//	}
//
//	p, _ := censor.New(
//	    censor.WithFormat(censor.FormatJSON),
//	    censor.WithExcludePatterns(`\d{4}-\d{4}-\d{4}-\d{4}`),
//	)
//
//	p.Format(User{ID: 1, Name: "Alice", Email: "alice@example.com"})
//	// {"id":1,"name":"Alice","email":"[CENSORED]"}
//
// # Type Handlers
//
// Handlers take over rendering for one concrete type:
//
//	censor.Handle(func(t Token) string { return t.Prefix() + "…" })
//	censor.WithBuiltinMasker[Email](censor.MaskEmail)
//
// # Cycles
//
// References that point back onto the path being walked render as the
// cycle sentinel instead of recursing. Shared but acyclic references are
// rendered in full at every occurrence.
//
// # Codecs and Adapters
//
// Result.Marshal encodes the masked tree with any Codec; the json, yaml,
// msgpack and bson sub-packages provide them. The handlers sub-packages
// plug a Processor into log/slog, zap and zerolog.
package censor
