// Package cli parses the oddsieve command line and environment.
//
// Grammar, in any order:
//
//	oddsieve [-p|-P] [-c|-C] <upper_limit>
//
// Each flag may appear once and exactly one unsigned upper limit >= 2 is
// required. Anything else, including unknown dash-prefixed tokens, is an
// invalid argument.
package cli
