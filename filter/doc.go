// Package filter implements the per-destination decision chain.
//
// Every Filter answers Decide with one of three Decisions. A Chain walks
// its filters in order and stops at the first DENY or ACCEPT; a chain that
// only sees NEUTRAL (the empty chain included) resolves to ACCEPT. A single
// filter can therefore act as an allow-list or a deny-list depending on its
// options, and a deny-by-default posture is expressed by appending DenyAll.
//
// Built-in kinds are resolved by name through New, which rejects unknown
// kinds and invalid options at configuration time:
//
//	f, err := filter.New("stringmatch", map[string]any{
//	    "stringToMatch": "ERROR",
//	    "acceptOnMatch": false,
//	})
//
// Chains are built once during configuration and only read during
// dispatch; Add and Clear must not race with Decide.
package filter
